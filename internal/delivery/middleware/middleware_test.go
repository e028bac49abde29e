package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gatehouse/config"
	deliverycontext "gatehouse/internal/delivery/context"
	domainerrors "gatehouse/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Metrics = &config.MetricsConfig{Enabled: true, Path: "/metrics"}

	return cfg
}

func TestRequestIDMiddleware_Process(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   string
		expectID func(t *testing.T, got string)
	}{
		{
			name:   "reuses client id",
			header: "req-123",
			expectID: func(t *testing.T, got string) {
				assert.Equal(t, "req-123", got)
			},
		},
		{
			name: "generates id when missing",
			expectID: func(t *testing.T, got string) {
				assert.Len(t, got, 36)
			},
		},
		{
			name:   "replaces id with control characters",
			header: "bad\tid",
			expectID: func(t *testing.T, got string) {
				assert.NotEqual(t, "bad\tid", got)
				assert.Len(t, got, 36)
			},
		},
		{
			name:   "replaces oversized id",
			header: strings.Repeat("a", maxRequestIDLength+1),
			expectID: func(t *testing.T, got string) {
				assert.Len(t, got, 36)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			var hasLogger bool
			handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
				ctxID = deliverycontext.RequestIDFrom(c.Request().Context())
				hasLogger = deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil) != nil

				return nil
			})

			require.NoError(t, handler(c))
			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			tt.expectID(t, got)
			assert.Equal(t, got, ctxID)
			assert.Equal(t, got, deliverycontext.RequestID(c))
			assert.True(t, hasLogger)
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		path        string
		handler     echo.HandlerFunc
		expectLog   bool
		expectLevel string
	}{
		{
			name: "logs success at info",
			path: "/auth/check",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			},
			expectLog:   true,
			expectLevel: "level=INFO",
		},
		{
			name: "logs app error at its status",
			path: "/auth/me",
			handler: func(c echo.Context) error {
				return domainerrors.ErrUnauthorized.WrapMessage("no session")
			},
			expectLog:   true,
			expectLevel: "level=WARN",
		},
		{
			name: "logs unknown error as server error",
			path: "/auth/me",
			handler: func(c echo.Context) error {
				return assert.AnError
			},
			expectLog:   true,
			expectLevel: "level=ERROR",
		},
		{
			name: "skips health probe",
			path: "/health",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			},
		},
		{
			name: "skips metrics scrape",
			path: "/metrics",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			_ = NewLoggerMiddleware(logger, newTestConfig()).Handle(tt.handler)(c)

			if !tt.expectLog {
				assert.Empty(t, buf.String())

				return
			}

			assert.Contains(t, buf.String(), "HTTP Request")
			assert.Contains(t, buf.String(), tt.expectLevel)
			assert.Contains(t, buf.String(), "uri="+tt.path)
		})
	}
}

func TestLoggerMiddleware_LogsRecordedPrincipal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewRequestIDMiddleware(logger).Process(
		NewLoggerMiddleware(logger, newTestConfig()).Handle(func(c echo.Context) error {
			deliverycontext.RecordPrincipal(c.Request().Context(), "web", "user-42")

			return c.NoContent(http.StatusOK)
		}),
	)

	require.NoError(t, handler(c))
	assert.Contains(t, buf.String(), "guard=web")
	assert.Contains(t, buf.String(), "user_id=user-42")
}
