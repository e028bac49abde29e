// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"gatehouse/internal/domain/entity"
	"gatehouse/internal/domain/service"

	"github.com/google/uuid"
)

// SessionGuard authenticates one request through the session, falling back to
// a remember-me cookie. It is created per request and must not be shared.
type SessionGuard interface {
	Name() string

	// VerifyCredentials fails with ErrInvalidCredentials without telling whether uid or password was wrong.
	VerifyCredentials(ctx context.Context, uid, password string) (*entity.User, error)

	// Login establishes a fresh session for user and, when remember is set, issues a remember-me cookie.
	Login(ctx context.Context, user *entity.User, remember bool) error

	// LoginViaID looks the user up first and fails with ErrInvalidCredentials when it is missing.
	LoginViaID(ctx context.Context, id uuid.UUID, remember bool) error

	// Attempt is VerifyCredentials followed by Login.
	Attempt(ctx context.Context, uid, password string, remember bool) (*entity.User, error)

	// Authenticate resolves the user once per request; later calls replay the first outcome.
	Authenticate(ctx context.Context) (*entity.User, error)

	// Check reports false instead of failing with ErrUnauthorized. Other errors propagate.
	Check(ctx context.Context) (bool, error)

	// Logout always succeeds once the session and cookie are cleared.
	Logout(ctx context.Context) error

	GetUserOrFail() (*entity.User, error)
	User() *entity.User

	IsAuthenticated() bool
	IsLoggedOut() bool
	ViaRemember() bool
	AuthenticationAttempted() bool

	SessionKeyName() string
	RememberMeKeyName() string
}

// AccessTokenGuard authenticates one request through an opaque bearer token.
type AccessTokenGuard interface {
	Name() string
	Authenticate(ctx context.Context) (*entity.User, error)
	Check(ctx context.Context) (bool, error)
	GetUserOrFail() (*entity.User, error)
	User() *entity.User

	// CurrentToken is the verified token, nil before a successful Authenticate.
	CurrentToken() *entity.AccessToken

	IsAuthenticated() bool
	AuthenticationAttempted() bool
}

// GuardFactory builds per-request guards around shared providers.
type GuardFactory interface {
	SessionGuard(name string, session service.Session, cookies service.CookieJar) SessionGuard

	// AccessTokenGuard reads the token from the raw Authorization header value.
	AccessTokenGuard(name string, authorization string) AccessTokenGuard

	// DefaultGuard is the configured session guard name.
	DefaultGuard() string
}
