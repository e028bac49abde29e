package token

import (
	"encoding/base64"
	"strings"

	"gatehouse/internal/errors"
)

// DefaultDelimiter separates the identifier from the secret in a public value.
const DefaultDelimiter = "."

var (
	// ErrInvalidIdentifier is returned by Encode when the identifier is empty or
	// its encoded form would collide with the delimiter.
	ErrInvalidIdentifier = errors.New("token identifier is empty or contains the delimiter")

	// ErrEmptySecret is returned by Encode when there is no secret to encode.
	ErrEmptySecret = errors.New("token secret is empty")
)

// Decoded is the result of parsing a public token value.
type Decoded struct {
	Identifier string
	Secret     *Secret
}

// Codec converts between (identifier, secret) pairs and their public value
// "<prefix><identifier><delimiter><secret>", both parts base64url encoded.
type Codec struct {
	Prefix    string
	Delimiter string

	// ValidIdentifier optionally rejects decoded identifiers of the wrong shape.
	ValidIdentifier func(string) bool
}

// NewCodec builds a codec, falling back to DefaultDelimiter.
func NewCodec(prefix, delimiter string) Codec {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	return Codec{Prefix: prefix, Delimiter: delimiter}
}

// WithIdentifierValidator returns a copy of c that also checks identifiers on decode.
func (c Codec) WithIdentifierValidator(valid func(string) bool) Codec {
	c.ValidIdentifier = valid

	return c
}

func (c Codec) delimiter() string {
	if c.Delimiter == "" {
		return DefaultDelimiter
	}

	return c.Delimiter
}

// Encode builds the public value.
func (c Codec) Encode(identifier, secret string) (string, error) {
	if secret == "" {
		return "", errors.WithStack(ErrEmptySecret)
	}

	encodedID := base64.RawURLEncoding.EncodeToString([]byte(identifier))
	if identifier == "" || strings.Contains(encodedID, c.delimiter()) {
		return "", errors.WithStack(ErrInvalidIdentifier)
	}

	encodedSecret := base64.RawURLEncoding.EncodeToString([]byte(secret))

	return c.Prefix + encodedID + c.delimiter() + encodedSecret, nil
}

// Decode parses a public value coming from an untrusted source. Any malformed
// input yields ok == false; the caller cannot tell why.
func (c Codec) Decode(value string) (Decoded, bool) {
	if value == "" || !strings.HasPrefix(value, c.Prefix) {
		return Decoded{}, false
	}

	rest := strings.TrimPrefix(value, c.Prefix)
	encodedID, encodedSecret, found := strings.Cut(rest, c.delimiter())
	if !found || encodedID == "" || encodedSecret == "" {
		return Decoded{}, false
	}

	identifier, err := base64.RawURLEncoding.DecodeString(encodedID)
	if err != nil || len(identifier) == 0 {
		return Decoded{}, false
	}

	secret, err := base64.RawURLEncoding.DecodeString(encodedSecret)
	if err != nil || len(secret) == 0 {
		return Decoded{}, false
	}

	if c.ValidIdentifier != nil && !c.ValidIdentifier(string(identifier)) {
		return Decoded{}, false
	}

	return Decoded{
		Identifier: string(identifier),
		Secret:     NewSecret(string(secret)),
	}, true
}
