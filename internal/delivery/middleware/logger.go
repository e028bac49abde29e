package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"gatehouse/config"
	deliverycontext "gatehouse/internal/delivery/context"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/errors"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request.
type LoggerMiddleware struct {
	logger    *slog.Logger
	debug     bool
	skipPaths map[string]struct{}
}

// NewLoggerMiddleware creates a new logger middleware.
// Health and metrics probes are never logged.
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	skip := map[string]struct{}{"/health": {}}
	if cfg.Metrics != nil && cfg.Metrics.Enabled {
		skip[cfg.Metrics.Path] = struct{}{}
	}

	return &LoggerMiddleware{
		logger:    logger,
		debug:     cfg.Env.Debug,
		skipPaths: skip,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, skip := m.skipPaths[c.Request().URL.Path]; skip {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		m.logRequest(c, start, err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	status := res.Status
	if err != nil && !res.Committed {
		// The centralized error handler has not rendered yet.
		status = statusFromError(err)
	}

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}

	if guard, userID, ok := deliverycontext.RequestFrom(req.Context()).Principal(); ok {
		fields = append(fields, slog.String("guard", guard), slog.String("user_id", userID))
	}

	if m.debug {
		fields = append(fields, slog.String("user_agent", req.UserAgent()))
		if req.URL.RawQuery != "" {
			fields = append(fields, slog.String("query", req.URL.RawQuery))
		}
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	switch {
	case status >= 500:
		logLevel = slog.LevelError
	case status >= 400:
		logLevel = slog.LevelWarn
	}

	ctx := req.Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, logLevel, "HTTP Request", fields...)
}

func statusFromError(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	return http.StatusInternalServerError
}
