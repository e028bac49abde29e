// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the principal a guard authenticates.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // Login identifier (uid). Unique.
	Name         string    // The user's display name.
	PasswordHash string    // bcrypt hash of the user's password. Never leaves the server.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}
