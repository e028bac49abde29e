package repository

import (
	"context"
	"time"

	"gatehouse/internal/domain/entity"
	"gatehouse/internal/errors"

	"github.com/google/uuid"
)

// ErrAccessTokenNotFound is returned when an access token does not exist.
var ErrAccessTokenNotFound = errors.New("access token not found")

// AccessTokenRepository persists access tokens. Only hashes are stored.
type AccessTokenRepository interface {
	// Create persists a new access token.
	Create(ctx context.Context, token *entity.AccessToken) error

	// FindByID retrieves a token of tokenType by its identifier.
	FindByID(ctx context.Context, tokenType string, id uuid.UUID) (*entity.AccessToken, error)

	// ListByTokenable returns every token of tokenType owned by tokenableID, newest first.
	ListByTokenable(ctx context.Context, tokenType string, tokenableID uuid.UUID) ([]*entity.AccessToken, error)

	// TouchLastUsed records the last successful use of a token.
	TouchLastUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) error

	// Delete removes a token owned by tokenableID and returns the number of rows removed.
	Delete(ctx context.Context, tokenType string, tokenableID, id uuid.UUID) (int64, error)

	// DeleteExpired removes every token that expired before now.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
