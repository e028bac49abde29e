package middleware

import (
	"net/http"

	"gatehouse/config"
	"gatehouse/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// NewLoginRateLimiter throttles login attempts per client IP. A zero rate
// disables it.
func NewLoginRateLimiter(cfg *config.Config) echo.MiddlewareFunc {
	limit := cfg.Auth.LoginRateLimit
	if limit.RatePerSecond <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	burst := limit.Burst
	if burst <= 0 {
		burst = 1
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(limit.RatePerSecond),
		Burst:     burst,
		ExpiresIn: limit.ExpiresIn,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return response.Error(c, http.StatusTooManyRequests, "TOO_MANY_REQUESTS", "Too many login attempts, please retry later", nil)
		},
	})
}
