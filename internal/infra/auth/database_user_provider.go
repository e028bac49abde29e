package auth

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	deliverycontext "gatehouse/internal/delivery/context"
	"gatehouse/internal/domain/entity"
	"gatehouse/internal/domain/provider"
	"gatehouse/internal/domain/repository"
	"gatehouse/internal/domain/service"
	"gatehouse/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// dummyPassword is hashed once and checked against for unknown uids, so a
// missing account costs the same as a wrong password.
const dummyPassword = "gatehouse-timing-equalizer"

// sharedLookupTimeout bounds a collapsed FindByID query, which runs detached
// from any single caller's cancellation.
const sharedLookupTimeout = 10 * time.Second

// databaseUserProvider implements provider.UserProvider and every optional
// remember-me capability on top of the repositories.
type databaseUserProvider struct {
	users          repository.UserRepository
	rememberTokens repository.RememberMeTokenRepository
	hasher         service.PasswordHasher
	lookups        singleflight.Group
	logger         *slog.Logger

	dummyOnce sync.Once
	dummyHash string
}

// DatabaseUserProviderParams holds dependencies for the user provider, injected by Fx.
type DatabaseUserProviderParams struct {
	fx.In

	Users          repository.UserRepository
	RememberTokens repository.RememberMeTokenRepository
	Hasher         service.PasswordHasher
	Logger         *slog.Logger
}

// NewDatabaseUserProvider is the constructor for databaseUserProvider.
func NewDatabaseUserProvider(params DatabaseUserProviderParams) provider.UserProvider {
	return newDatabaseUserProvider(params)
}

func newDatabaseUserProvider(params DatabaseUserProviderParams) *databaseUserProvider {
	return &databaseUserProvider{
		users:          params.Users,
		rememberTokens: params.RememberTokens,
		hasher:         params.Hasher,
		logger:         params.Logger,
	}
}

func (p *databaseUserProvider) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, p.logger)
}

// CreateUserForGuard adapts user for the guard.
func (p *databaseUserProvider) CreateUserForGuard(user *entity.User) (*provider.GuardUser, error) {
	return provider.NewGuardUser(user)
}

// FindByID collapses concurrent lookups of the same id into one query. The
// query outlives a cancelled caller; each caller still stops waiting when its
// own ctx is done.
func (p *databaseUserProvider) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	results := p.lookups.DoChan(id.String(), func() (any, error) {
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedLookupTimeout)
		defer cancel()

		return p.users.FindByID(lookupCtx, id)
	})

	select {
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "failed to find user by id")
	case res := <-results:
		if res.Err != nil {
			if errors.Is(res.Err, repository.ErrUserNotFound) {
				return nil, nil
			}

			return nil, errors.Wrap(res.Err, "failed to find user by id")
		}

		user, _ := res.Val.(*entity.User)
		if user == nil {
			return nil, nil
		}

		// Callers share the query result; hand each one its own copy.
		owned := *user

		return &owned, nil
	}
}

// VerifyCredentials looks the user up by email and checks the password.
func (p *databaseUserProvider) VerifyCredentials(ctx context.Context, uid, password string) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(uid))

	user, err := p.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			p.hasher.Check(password, p.timingHash())

			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !p.hasher.Check(password, user.PasswordHash) {
		return nil, nil
	}

	if p.hasher.NeedsRehash(user.PasswordHash) {
		p.rehash(ctx, user, password)
	}

	return user, nil
}

func (p *databaseUserProvider) timingHash() string {
	p.dummyOnce.Do(func() {
		hash, err := p.hasher.Hash(dummyPassword)
		if err != nil {
			p.logger.Warn("Failed to prepare timing hash", slog.Any("error", err))

			return
		}
		p.dummyHash = hash
	})

	return p.dummyHash
}

// rehash upgrades a stored hash after a successful login. Failures only cost
// another rehash on the next login.
func (p *databaseUserProvider) rehash(ctx context.Context, user *entity.User, password string) {
	hash, err := p.hasher.Hash(password)
	if err != nil {
		p.log(ctx).Warn("Failed to rehash password", slog.Any("user_id", user.ID), slog.Any("error", err))

		return
	}

	if err := p.users.UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		p.log(ctx).Warn("Failed to store rehashed password", slog.Any("user_id", user.ID), slog.Any("error", err))

		return
	}

	user.PasswordHash = hash
}

// FindRememberMeTokenBySeries returns nil, nil for unknown series.
func (p *databaseUserProvider) FindRememberMeTokenBySeries(ctx context.Context, series string) (*entity.RememberMeToken, error) {
	token, err := p.rememberTokens.FindBySeries(ctx, series)
	if err != nil {
		if errors.Is(err, repository.ErrRememberMeTokenNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find remember me token")
	}

	return token, nil
}

// CreateRememberMeToken persists a newly issued token.
func (p *databaseUserProvider) CreateRememberMeToken(ctx context.Context, token *entity.RememberMeToken) error {
	if err := p.rememberTokens.Create(ctx, token); err != nil {
		return errors.Wrap(err, "failed to create remember me token")
	}

	return nil
}

// RecycleRememberMeToken stores a rotated token if no other request rotated it first.
func (p *databaseUserProvider) RecycleRememberMeToken(ctx context.Context, token *entity.RememberMeToken, previousUpdatedAt time.Time) (bool, error) {
	committed, err := p.rememberTokens.UpdateIfUnchanged(ctx, token, previousUpdatedAt)
	if err != nil {
		return false, errors.Wrap(err, "failed to recycle remember me token")
	}

	return committed, nil
}

// DeleteRememberMeTokenBySeries revokes a token.
func (p *databaseUserProvider) DeleteRememberMeTokenBySeries(ctx context.Context, series string) error {
	if err := p.rememberTokens.DeleteBySeries(ctx, series); err != nil {
		return errors.Wrap(err, "failed to delete remember me token")
	}

	return nil
}
