package entity

import (
	"time"

	"gatehouse/internal/domain/token"
	"gatehouse/internal/errors"

	"github.com/google/uuid"
)

// DefaultRecycleBuffer is the minimum age of a remember-me token before it is rotated again.
// Requests racing on the same cookie inside this window reuse the cookie unchanged.
const DefaultRecycleBuffer = 60 * time.Second

var rememberMeCodec = token.NewCodec("", token.DefaultDelimiter)

// RememberMeToken is a long lived login bound to one browser. The series stays
// fixed for the token's lifetime while the secret is rotated by Refresh.
type RememberMeToken struct {
	Series    string    // Opaque, non secret identifier of this remember-me chain.
	UserID    uuid.UUID // Owner of the token.
	Guard     string    // Name of the guard that issued the token.
	Hash      string    // SHA-256 digest of the current secret.
	CreatedAt time.Time // When the series was first issued.
	UpdatedAt time.Time // When the secret was last rotated.
	ExpiresAt time.Time // After this instant the token no longer authenticates.

	secret *token.Secret
}

// NewRememberMeToken issues a fresh series and secret for userID.
func NewRememberMeToken(userID uuid.UUID, guard string, ttl time.Duration, now time.Time) (*RememberMeToken, error) {
	series, err := token.GenerateSeries()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create remember me token")
	}

	secret, err := token.GenerateSecret(token.DefaultSecretSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create remember me token")
	}

	now = now.UTC()

	return &RememberMeToken{
		Series:    series,
		UserID:    userID,
		Guard:     guard,
		Hash:      secret.Hash(),
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(ttl),
		secret:    secret,
	}, nil
}

// DecodeRememberMeToken parses a cookie value into its series and secret.
// It performs no I/O.
func DecodeRememberMeToken(value string) (string, *token.Secret, bool) {
	decoded, ok := rememberMeCodec.Decode(value)
	if !ok {
		return "", nil, false
	}

	return decoded.Identifier, decoded.Secret, true
}

// Verify reports whether candidate is the token's current secret.
func (t *RememberMeToken) Verify(candidate *token.Secret) bool {
	return candidate.Matches(t.Hash)
}

// IsExpired reports whether the token has expired at now.
func (t *RememberMeToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// Refresh rotates the secret and extends the expiry. The previous secret stops verifying.
func (t *RememberMeToken) Refresh(ttl time.Duration, now time.Time) error {
	secret, err := token.GenerateSecret(token.DefaultSecretSize)
	if err != nil {
		return errors.Wrap(err, "failed to refresh remember me token")
	}

	now = now.UTC()
	t.secret = secret
	t.Hash = secret.Hash()
	t.UpdatedAt = now
	t.ExpiresAt = now.Add(ttl)

	return nil
}

// ShouldRecycle reports whether the token is old enough to be rotated.
func (t *RememberMeToken) ShouldRecycle(now time.Time, buffer time.Duration) bool {
	return now.After(t.UpdatedAt.Add(buffer))
}

// Recycle returns the cookie value the client should hold after this request.
// Inside the buffer the current cookie is returned unchanged and the token is
// left untouched. Past the buffer the token is refreshed and rotated is true;
// the caller must persist it.
func (t *RememberMeToken) Recycle(currentCookie string, ttl time.Duration, now time.Time, buffer time.Duration) (string, bool, error) {
	if !t.ShouldRecycle(now, buffer) {
		return currentCookie, false, nil
	}

	if err := t.Refresh(ttl, now); err != nil {
		return "", false, err
	}

	value, ok := t.ReleaseValue()
	if !ok {
		return "", false, errors.New("refreshed remember me token has no value")
	}

	return value, true, nil
}

// ReleaseValue encodes the cookie value. It succeeds once per issued secret.
func (t *RememberMeToken) ReleaseValue() (string, bool) {
	secret, ok := t.secret.Release()
	if !ok {
		return "", false
	}

	value, err := rememberMeCodec.Encode(t.Series, secret)
	if err != nil {
		return "", false
	}

	return value, true
}
