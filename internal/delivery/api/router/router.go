// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gatehouse/config"
	"gatehouse/internal/delivery/api/middleware"
	"gatehouse/internal/delivery/api/router/handler"
	"gatehouse/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Abilities checked by token-authenticated routes.
const (
	AbilityTokensRead = "tokens:read"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	TokenHandler      *handler.TokenHandler
	SessionMiddleware *middleware.SessionMiddleware
	AuthMiddleware    *middleware.AuthMiddleware
	Metrics           *metrics.AuthMetrics
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	tokenHandler      *handler.TokenHandler
	sessionMiddleware *middleware.SessionMiddleware
	authMiddleware    *middleware.AuthMiddleware
	metrics           *metrics.AuthMetrics
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		tokenHandler:      params.TokenHandler,
		sessionMiddleware: params.SessionMiddleware,
		authMiddleware:    params.AuthMiddleware,
		metrics:           params.Metrics,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	// Session routes
	authGroup := e.Group("/auth")
	authGroup.Use(r.sessionMiddleware.Handle)
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login, middleware.NewLoginRateLimiter(r.config))
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/check", r.authHandler.Check)
	}

	// Routes that require an authenticated session
	requireSession := r.authMiddleware.RequireSession
	{
		authGroup.GET("/me", r.authHandler.Me, requireSession)
		authGroup.POST("/tokens", r.tokenHandler.Issue, requireSession)
		authGroup.GET("/tokens", r.tokenHandler.List, requireSession)
		authGroup.DELETE("/tokens/:id", r.tokenHandler.Revoke, requireSession)
	}

	// API v1 routes authenticate with an access token
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.RequireAccessToken)
	{
		apiV1.GET("/me", r.tokenHandler.Me)
		apiV1.GET("/abilities/:ability", r.tokenHandler.CheckAbility)
		apiV1.GET("/tokens", r.tokenHandler.List, r.authMiddleware.RequireAbility(AbilityTokensRead))
	}
}
