package repository

import (
	"context"
	"time"

	"gatehouse/internal/domain/entity"
	"gatehouse/internal/errors"
)

// ErrRememberMeTokenNotFound is returned when no token exists for a series.
var ErrRememberMeTokenNotFound = errors.New("remember me token not found")

// RememberMeTokenRepository persists remember-me tokens keyed by series.
type RememberMeTokenRepository interface {
	// Create persists a freshly issued token.
	Create(ctx context.Context, token *entity.RememberMeToken) error

	// FindBySeries retrieves the token for series.
	FindBySeries(ctx context.Context, series string) (*entity.RememberMeToken, error)

	// UpdateIfUnchanged stores the rotated hash and timestamps only if the row
	// still carries previousUpdatedAt. It reports whether the write committed.
	UpdateIfUnchanged(ctx context.Context, token *entity.RememberMeToken, previousUpdatedAt time.Time) (bool, error)

	// DeleteBySeries removes the token for series. Missing rows are not an error.
	DeleteBySeries(ctx context.Context, series string) error

	// DeleteExpired removes every token that expired before now and returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
