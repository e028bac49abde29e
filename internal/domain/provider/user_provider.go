// Package provider defines the collaborators a guard authenticates against.
// Remember-me support is optional; what a concrete provider offers is detected
// once, when the guard factory is built, and recorded in Capabilities.
package provider

import (
	"context"
	"time"

	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"

	"github.com/google/uuid"
)

// GuardUser adapts a user for storage in a guard's session.
type GuardUser struct {
	id       uuid.UUID
	original *entity.User
}

// NewGuardUser wraps user. It rejects users without an identifier.
func NewGuardUser(user *entity.User) (*GuardUser, error) {
	if user == nil || user.ID == uuid.Nil {
		return nil, domainerrors.ErrInvalidGuardUser.WrapMessage("user has no identifier")
	}

	return &GuardUser{id: user.ID, original: user}, nil
}

// ID is the value stored in the session.
func (u *GuardUser) ID() uuid.UUID {
	return u.id
}

// Original returns the wrapped user.
func (u *GuardUser) Original() *entity.User {
	return u.original
}

// UserProvider is required by every guard.
type UserProvider interface {
	// CreateUserForGuard adapts user for the guard.
	CreateUserForGuard(user *entity.User) (*GuardUser, error)

	// FindByID returns nil, nil when the user does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// VerifyCredentials returns nil, nil when uid or password does not match,
	// without saying which.
	VerifyCredentials(ctx context.Context, uid, password string) (*entity.User, error)
}

// RememberMeTokenFinder looks remember-me tokens up by series.
type RememberMeTokenFinder interface {
	// FindRememberMeTokenBySeries returns nil, nil when the series is unknown.
	FindRememberMeTokenBySeries(ctx context.Context, series string) (*entity.RememberMeToken, error)
}

// RememberMeTokenCreator persists newly issued remember-me tokens.
type RememberMeTokenCreator interface {
	CreateRememberMeToken(ctx context.Context, token *entity.RememberMeToken) error
}

// RememberMeTokenRecycler persists a rotated token with a conditional write.
type RememberMeTokenRecycler interface {
	// RecycleRememberMeToken stores token only if the stored row was last updated
	// at previousUpdatedAt. committed is false when another request rotated first;
	// the guard then leaves the client cookie alone, so the client keeps the
	// winner's value. Implementations must not retry or overwrite.
	RecycleRememberMeToken(ctx context.Context, token *entity.RememberMeToken, previousUpdatedAt time.Time) (committed bool, err error)
}

// RememberMeTokenDeleter removes remember-me tokens on logout.
type RememberMeTokenDeleter interface {
	DeleteRememberMeTokenBySeries(ctx context.Context, series string) error
}

// Capabilities lists the optional operations a UserProvider implements.
// A nil field means the operation is unsupported.
type Capabilities struct {
	Finder   RememberMeTokenFinder
	Creator  RememberMeTokenCreator
	Recycler RememberMeTokenRecycler
	Deleter  RememberMeTokenDeleter
}

// CapabilitiesOf inspects p once.
func CapabilitiesOf(p UserProvider) Capabilities {
	var caps Capabilities

	if finder, ok := p.(RememberMeTokenFinder); ok {
		caps.Finder = finder
	}
	if creator, ok := p.(RememberMeTokenCreator); ok {
		caps.Creator = creator
	}
	if recycler, ok := p.(RememberMeTokenRecycler); ok {
		caps.Recycler = recycler
	}
	if deleter, ok := p.(RememberMeTokenDeleter); ok {
		caps.Deleter = deleter
	}

	return caps
}

// CanCreateRememberMeTokens reports whether login with remember=true can succeed.
func (c Capabilities) CanCreateRememberMeTokens() bool {
	return c.Creator != nil
}

// CanDeleteRememberMeTokens reports whether logout can revoke the stored token.
func (c Capabilities) CanDeleteRememberMeTokens() bool {
	return c.Deleter != nil
}

// SupportsRememberMe reports whether a remember-me cookie can authenticate a request.
func (c Capabilities) SupportsRememberMe() bool {
	return c.Finder != nil && c.Creator != nil && c.Recycler != nil
}
