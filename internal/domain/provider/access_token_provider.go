package provider

import (
	"context"
	"time"

	"gatehouse/internal/domain/entity"
	"gatehouse/internal/domain/token"

	"github.com/google/uuid"
)

// CreateTokenOptions are per token settings chosen by the caller.
type CreateTokenOptions struct {
	Name      *string
	ExpiresIn time.Duration
}

// AccessTokenProvider issues and verifies opaque access tokens for one token type.
type AccessTokenProvider interface {
	// Create issues a token for user. The returned entity holds the only copy of the secret.
	Create(ctx context.Context, user *entity.User, abilities []string, opts CreateTokenOptions) (*entity.AccessToken, error)

	// Verify resolves a public value. Malformed, unknown, mismatched or expired
	// values yield nil, nil. A verified token has LastUsedAt set.
	Verify(ctx context.Context, value string) (*entity.AccessToken, error)

	// All lists the tokens owned by user, newest first.
	All(ctx context.Context, user *entity.User) ([]*entity.AccessToken, error)

	// Find returns nil, nil when user owns no token with that identifier.
	Find(ctx context.Context, user *entity.User, id uuid.UUID) (*entity.AccessToken, error)

	// Delete reports whether a token was removed.
	Delete(ctx context.Context, user *entity.User, id uuid.UUID) (bool, error)

	// Codec encodes public values for this token type.
	Codec() token.Codec
}
