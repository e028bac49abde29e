package entity

import (
	"slices"
	"time"

	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/token"
	"gatehouse/internal/errors"

	"github.com/google/uuid"
)

// WildcardAbility grants every ability.
const WildcardAbility = "*"

// AccessTokenOptions configures a new access token.
type AccessTokenOptions struct {
	Type       string        // Tenant bucket, e.g. "auth_token".
	Name       *string       // Optional label shown to the owner.
	Abilities  []string      // Defaults to the wildcard ability.
	ExpiresIn  time.Duration // Zero means the token never expires.
	SecretSize int           // Random characters in the secret, before the checksum.
}

// AccessToken is an opaque bearer token. Only its hash is persisted; the
// public value exists once, right after creation.
type AccessToken struct {
	Identifier  uuid.UUID  // Primary key, embedded in the public value.
	TokenableID uuid.UUID  // The user who owns the token.
	Type        string     // Tenant bucket.
	Name        *string    // Optional label.
	Hash        string     // SHA-256 digest of the secret.
	Abilities   []string   // Ordered list of granted abilities.
	CreatedAt   time.Time  // When the token was issued.
	UpdatedAt   time.Time  // Last modification.
	ExpiresAt   *time.Time // Nil means the token never expires.
	LastUsedAt  *time.Time // Set on every successful verification.

	secret *token.Secret
}

// NewAccessToken builds a token for tokenableID with a fresh secret.
func NewAccessToken(tokenableID uuid.UUID, opts AccessTokenOptions, now time.Time) (*AccessToken, error) {
	secret, err := token.GenerateSecret(opts.SecretSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create access token")
	}

	abilities := slices.Clone(opts.Abilities)
	if len(abilities) == 0 {
		abilities = []string{WildcardAbility}
	}

	now = now.UTC()
	accessToken := &AccessToken{
		Identifier:  uuid.New(),
		TokenableID: tokenableID,
		Type:        opts.Type,
		Name:        opts.Name,
		Hash:        secret.Hash(),
		Abilities:   abilities,
		CreatedAt:   now,
		UpdatedAt:   now,
		secret:      secret,
	}

	if opts.ExpiresIn > 0 {
		expiresAt := now.Add(opts.ExpiresIn)
		accessToken.ExpiresAt = &expiresAt
	}

	return accessToken, nil
}

// Release encodes the public value with codec. It succeeds once.
func (t *AccessToken) Release(codec token.Codec) (string, bool) {
	secret, ok := t.secret.Release()
	if !ok {
		return "", false
	}

	value, err := codec.Encode(t.Identifier.String(), secret)
	if err != nil {
		return "", false
	}

	return value, true
}

// Verify reports whether candidate hashes to the stored digest.
func (t *AccessToken) Verify(candidate *token.Secret) bool {
	return candidate.Matches(t.Hash)
}

// IsExpired reports whether the token has expired at now.
func (t *AccessToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt != nil && !now.Before(*t.ExpiresAt)
}

// MarkUsed records a successful verification.
func (t *AccessToken) MarkUsed(now time.Time) {
	usedAt := now.UTC()
	t.LastUsedAt = &usedAt
}

// Allows reports whether the token grants ability.
func (t *AccessToken) Allows(ability string) bool {
	return slices.Contains(t.Abilities, WildcardAbility) || slices.Contains(t.Abilities, ability)
}

// Denies is the negation of Allows.
func (t *AccessToken) Denies(ability string) bool {
	return !t.Allows(ability)
}

// Authorize fails with ErrAbilityDenied when the token does not grant ability.
func (t *AccessToken) Authorize(ability string) error {
	if t.Denies(ability) {
		return domainerrors.ErrAbilityDenied.WrapMessage("missing ability " + ability)
	}

	return nil
}
