// Package middleware contains the echo middleware of the API server.
package middleware

import (
	"log/slog"

	"gatehouse/config"
	deliverycontext "gatehouse/internal/delivery/context"
	"gatehouse/internal/errors"
	"gatehouse/internal/infra/cookie"
	"gatehouse/internal/infra/session"
	"gatehouse/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	keySessionGuard     = "session_guard"
	keyAccessTokenGuard = "access_token_guard"
)

// SessionMiddlewareParams holds dependencies for SessionMiddleware, injected by Fx
type SessionMiddlewareParams struct {
	fx.In

	Manager *session.Manager
	Cookies *cookie.Factory
	Guards  usecase.GuardFactory
	Config  *config.Config
	Logger  *slog.Logger
}

// SessionMiddleware loads the request session, builds the request's session
// guard and writes the session back just before the response is sent.
type SessionMiddleware struct {
	manager    *session.Manager
	cookies    *cookie.Factory
	guards     usecase.GuardFactory
	cookieName string
	logger     *slog.Logger
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	return &SessionMiddleware{
		manager:    params.Manager,
		cookies:    params.Cookies,
		guards:     params.Guards,
		cookieName: params.Config.Session.CookieName,
		logger:     params.Logger,
	}
}

// Handle attaches a session guard for the default guard to the request.
func (m *SessionMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		jar := m.cookies.Jar(c.Response(), req)

		id, _ := jar.GetEncrypted(m.cookieName)
		requestSession, err := m.manager.Load(req.Context(), id)
		if err != nil {
			return errors.Wrap(err, "failed to start session")
		}

		hadCookie := jar.Has(m.cookieName)
		c.Response().Before(func() {
			m.commit(c, jar, requestSession, hadCookie)
		})

		SetSessionGuard(c, m.guards.SessionGuard(m.guards.DefaultGuard(), requestSession, jar))

		return next(c)
	}
}

func (m *SessionMiddleware) commit(c echo.Context, jar *cookie.Jar, requestSession *session.RequestSession, hadCookie bool) {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

	write, err := m.manager.Commit(ctx, requestSession)
	if err != nil {
		logger.Error("Failed to save session", slog.Any("error", err))

		return
	}

	if !write {
		if hadCookie {
			jar.Clear(m.cookieName)
		}

		return
	}

	if err := jar.SetEncrypted(m.cookieName, requestSession.ID(), 0); err != nil {
		logger.Error("Failed to write session cookie", slog.Any("error", err))
	}
}

// GetSessionGuard returns the guard attached by SessionMiddleware.
func GetSessionGuard(c echo.Context) (usecase.SessionGuard, bool) {
	guard, ok := c.Get(keySessionGuard).(usecase.SessionGuard)

	return guard, ok
}

// SetSessionGuard attaches guard to the request.
func SetSessionGuard(c echo.Context, guard usecase.SessionGuard) {
	c.Set(keySessionGuard, guard)
}

// SetAccessTokenGuard attaches guard to the request.
func SetAccessTokenGuard(c echo.Context, guard usecase.AccessTokenGuard) {
	c.Set(keyAccessTokenGuard, guard)
}

// GetAccessTokenGuard returns the guard attached by RequireAccessToken.
func GetAccessTokenGuard(c echo.Context) (usecase.AccessTokenGuard, bool) {
	guard, ok := c.Get(keyAccessTokenGuard).(usecase.AccessTokenGuard)

	return guard, ok
}
