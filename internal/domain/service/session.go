package service

import (
	"context"
	"time"

	"gatehouse/internal/errors"
)

// ErrSessionNotFound is returned by a SessionStore for unknown or expired sessions.
var ErrSessionNotFound = errors.New("session not found")

// Session is the server-side state of one request. Changes are buffered and
// written back by the session middleware once the handler finishes.
type Session interface {
	// ID is the current session identifier.
	ID() string

	Get(key string) (string, bool)
	Put(key, value string)
	Forget(key string)

	// Regenerate moves the data to a fresh identifier and schedules the old
	// one for deletion.
	Regenerate() error
}

// SessionStore persists session data between requests.
type SessionStore interface {
	Load(ctx context.Context, id string) (map[string]string, error)
	Save(ctx context.Context, id string, data map[string]string, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

// CookieJar reads and writes encrypted cookies of one request.
type CookieJar interface {
	// GetEncrypted returns false for absent or tampered cookies.
	GetEncrypted(name string) (string, bool)

	SetEncrypted(name, value string, maxAge time.Duration) error

	// Clear expires the cookie on the client.
	Clear(name string)
}
