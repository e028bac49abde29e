package usecase

import (
	"context"
	"time"

	"gatehouse/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// IssueAccessTokenInput defines the data required to issue an access token.
type IssueAccessTokenInput struct {
	Name      *string
	Abilities []string
	// ExpiresIn overrides the configured default. Zero keeps the default.
	ExpiresIn time.Duration
}

// --- Output DTOs ---

// IssuedAccessToken carries the only copy of the token's public value.
type IssuedAccessToken struct {
	Token *entity.AccessToken
	Value string
}

// AccessTokenUsecase manages the access tokens of an authenticated user.
type AccessTokenUsecase interface {
	Issue(ctx context.Context, user *entity.User, input IssueAccessTokenInput) (*IssuedAccessToken, error)
	List(ctx context.Context, user *entity.User) ([]*entity.AccessToken, error)
	Revoke(ctx context.Context, user *entity.User, id uuid.UUID) error
}
