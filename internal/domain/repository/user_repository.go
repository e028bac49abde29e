// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"gatehouse/internal/domain/entity"
	"gatehouse/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned by Create when the email is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// UpdatePasswordHash replaces the stored password hash of a user.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
}
