// Package token implements the opaque token primitives shared by remember-me
// cookies and access tokens: random secret generation, the public value codec,
// and hash verification.
package token

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"hash/crc32"
	"log/slog"
	"math/big"
	"strconv"
	"sync"

	"gatehouse/internal/errors"
)

const (
	// DefaultSecretSize is the number of random characters in a generated secret,
	// before the checksum suffix.
	DefaultSecretSize = 40

	seriesSize = 15
	redacted   = "[redacted]"
	alphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Secret holds a plaintext token secret that can be read exactly once.
// Formatting, JSON encoding and structured logging all print a placeholder.
type Secret struct {
	mu       sync.Mutex
	value    string
	released bool
}

// NewSecret wraps an existing plaintext value, e.g. one decoded from a request.
func NewSecret(value string) *Secret {
	return &Secret{value: value}
}

// GenerateSecret returns a new random secret of size characters followed by
// the CRC32 checksum of those characters.
func GenerateSecret(size int) (*Secret, error) {
	if size <= 0 {
		size = DefaultSecretSize
	}

	seed, err := randomString(size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token secret")
	}

	checksum := strconv.FormatUint(uint64(crc32.ChecksumIEEE([]byte(seed))), 10)

	return NewSecret(seed + checksum), nil
}

// GenerateSeries returns a random identifier for a remember-me series.
func GenerateSeries() (string, error) {
	series, err := randomString(seriesSize)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate token series")
	}

	return series, nil
}

// Release returns the plaintext and wipes it. Later calls report false.
func (s *Secret) Release() (string, bool) {
	if s == nil {
		return "", false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released {
		return "", false
	}

	value := s.value
	s.value = ""
	s.released = true

	return value, true
}

// Released reports whether the plaintext has already been handed out.
func (s *Secret) Released() bool {
	if s == nil {
		return true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.released
}

// Hash digests the secret without releasing it. A nil secret has no hash.
func (s *Secret) Hash() string {
	if s == nil {
		return ""
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return Hash(s.value)
}

// Matches compares the secret against a stored hash in constant time.
// A released or empty secret never matches.
func (s *Secret) Matches(hash string) bool {
	if s == nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released || s.value == "" {
		return false
	}

	return Verify(s.value, hash)
}

func (s *Secret) String() string {
	return redacted
}

func (s *Secret) GoString() string {
	return redacted
}

// LogValue keeps secrets out of slog output.
func (s *Secret) LogValue() slog.Value {
	return slog.StringValue(redacted)
}

// MarshalJSON keeps secrets out of JSON output.
func (s *Secret) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(redacted)), nil
}

// Hash returns the hex encoded SHA-256 digest of secret.
func Hash(secret string) string {
	sum := sha256.Sum256([]byte(secret))

	return hex.EncodeToString(sum[:])
}

// Verify reports whether secret hashes to hash. The comparison runs in
// constant time with respect to the digest contents.
func Verify(secret, hash string) bool {
	if secret == "" || hash == "" {
		return false
	}

	computed := Hash(secret)

	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}

func randomString(size int) (string, error) {
	out := make([]byte, size)
	limit := big.NewInt(int64(len(alphabet)))

	for i := range out {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", errors.WithStack(err)
		}
		out[i] = alphabet[n.Int64()]
	}

	return string(out), nil
}
