package middleware

import (
	"gatehouse/internal/domain/constants"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/errors"
	"gatehouse/internal/usecase"

	"github.com/labstack/echo/v4"
)

var errSessionMiddlewareMissing = errors.New("session middleware is not installed")

// AuthMiddleware guards routes with the session guard or an access token.
type AuthMiddleware struct {
	guards usecase.GuardFactory
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(guards usecase.GuardFactory) *AuthMiddleware {
	return &AuthMiddleware{guards: guards}
}

// RequireSession rejects requests whose session guard cannot authenticate.
// It must be used AFTER SessionMiddleware.
func (m *AuthMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		guard, ok := GetSessionGuard(c)
		if !ok {
			return errSessionMiddlewareMissing
		}

		if _, err := guard.Authenticate(c.Request().Context()); err != nil {
			return err
		}

		return next(c)
	}
}

// RequireAccessToken authenticates the bearer token of the request.
func (m *AuthMiddleware) RequireAccessToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		guard := m.guards.AccessTokenGuard(constants.AccessTokenGuardName, c.Request().Header.Get(echo.HeaderAuthorization))
		SetAccessTokenGuard(c, guard)

		if _, err := guard.Authenticate(c.Request().Context()); err != nil {
			if errors.Is(err, domainerrors.ErrUnauthorized) {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
			}

			return err
		}

		return next(c)
	}
}

// RequireAbility checks the verified token's abilities.
// It must be used AFTER RequireAccessToken.
func (m *AuthMiddleware) RequireAbility(ability string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			guard, ok := GetAccessTokenGuard(c)
			if !ok || guard.CurrentToken() == nil {
				return domainerrors.ErrUnauthorized.WrapMessage("access token required")
			}

			if err := guard.CurrentToken().Authorize(ability); err != nil {
				return err
			}

			return next(c)
		}
	}
}
