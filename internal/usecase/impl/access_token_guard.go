package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "gatehouse/internal/delivery/context"
	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/provider"
	"gatehouse/internal/domain/service"
	"gatehouse/internal/errors"
)

const bearerScheme = "bearer"

// accessTokenGuard implements the AccessTokenGuard interface for a single request.
type accessTokenGuard struct {
	name          string
	authorization string
	users         provider.UserProvider
	tokens        provider.AccessTokenProvider
	events        service.EventSink
	now           func() time.Time
	logger        *slog.Logger

	user                    *entity.User
	token                   *entity.AccessToken
	authenticationError     error
	authenticationAttempted bool
	isAuthenticated         bool
}

func (g *accessTokenGuard) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, g.logger).With(slog.String("guard", g.name))
}

func (g *accessTokenGuard) emitter() emitter {
	return emitter{group: service.AccessTokensAuthGroup, guard: g.name, sink: g.events, now: g.now}
}

func (g *accessTokenGuard) Name() string {
	return g.name
}

func (g *accessTokenGuard) User() *entity.User {
	return g.user
}

func (g *accessTokenGuard) CurrentToken() *entity.AccessToken {
	return g.token
}

func (g *accessTokenGuard) IsAuthenticated() bool {
	return g.isAuthenticated
}

func (g *accessTokenGuard) AuthenticationAttempted() bool {
	return g.authenticationAttempted
}

// Authenticate verifies the bearer token once per request.
func (g *accessTokenGuard) Authenticate(ctx context.Context) (*entity.User, error) {
	if g.authenticationAttempted {
		if g.user != nil {
			return g.user, nil
		}
		if g.authenticationError != nil {
			return nil, g.authenticationError
		}

		return nil, domainerrors.ErrUnauthorized.WrapMessage("user is not authenticated")
	}
	g.authenticationAttempted = true

	g.emitter().emit(ctx, g.emitter().event(ctx, service.AuthenticationAttempted))

	// 1. Extract the bearer value
	value, ok := bearerToken(g.authorization)
	if !ok {
		return g.fail(ctx, domainerrors.ErrUnauthorized.WrapMessage("missing bearer token"))
	}

	// 2. Verify it
	accessToken, err := g.tokens.Verify(ctx, value)
	if err != nil {
		return g.fail(ctx, errors.Wrap(err, "failed to verify access token"))
	}

	if accessToken == nil {
		return g.fail(ctx, domainerrors.ErrUnauthorized.WrapMessage("invalid access token"))
	}

	// 3. Resolve the owner
	user, err := g.users.FindByID(ctx, accessToken.TokenableID)
	if err != nil {
		return g.fail(ctx, errors.Wrap(err, "failed to find token owner"))
	}

	if user == nil {
		return g.fail(ctx, domainerrors.ErrUnauthorized.WrapMessage("token owner no longer exists"))
	}

	g.user = user
	g.token = accessToken
	g.isAuthenticated = true

	event := g.emitter().event(ctx, service.AuthenticationSucceeded)
	event.UserID = user.ID.String()
	event.TokenID = accessToken.Identifier.String()
	g.emitter().authenticated(ctx, event.UserID)
	g.emitter().emit(ctx, event)

	return user, nil
}

func (g *accessTokenGuard) fail(ctx context.Context, err error) (*entity.User, error) {
	g.authenticationError = err
	g.isAuthenticated = false

	event := g.emitter().event(ctx, service.AuthenticationFailed)
	event.Error = err.Error()
	g.emitter().emit(ctx, event)

	if !errors.Is(err, domainerrors.ErrUnauthorized) {
		g.log(ctx).Error("Access token authentication failed", slog.Any("error", err))
	}

	return nil, err
}

// Check reports false instead of failing with ErrUnauthorized.
func (g *accessTokenGuard) Check(ctx context.Context) (bool, error) {
	if _, err := g.Authenticate(ctx); err != nil {
		if errors.Is(err, domainerrors.ErrUnauthorized) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// GetUserOrFail returns the authenticated user or ErrUnauthorized.
func (g *accessTokenGuard) GetUserOrFail() (*entity.User, error) {
	if g.user == nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("user is not authenticated")
	}

	return g.user, nil
}

func bearerToken(header string) (string, bool) {
	scheme, value, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	value = strings.TrimSpace(value)

	return value, value != ""
}
