// Package context carries per-request identity between the HTTP middleware,
// the guards and the access log.
package context

import (
	"context"
	"log/slog"
	"sync"

	"github.com/labstack/echo/v4"
)

type contextKey int

const (
	requestKey contextKey = iota
	loggerKey
)

// HeaderXRequestID is the HTTP header name for request ID.
const HeaderXRequestID = "X-Request-Id"

// echoRequestKey stores the *Request in echo.Context for handlers that never
// look at the request context.
const echoRequestKey = "gatehouse.request"

// Request is shared by everything serving one HTTP request. Guards record
// the principal they authenticated; the access log reads it after the
// handler returns.
type Request struct {
	ID string

	mu     sync.Mutex
	guard  string
	userID string
}

// NewRequest starts the record for a request id.
func NewRequest(id string) *Request {
	return &Request{ID: id}
}

// SetPrincipal records the guard and user that authenticated the request.
// A later guard on the same request overwrites an earlier one.
func (r *Request) SetPrincipal(guard, userID string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.guard = guard
	r.userID = userID
}

// Principal returns the recorded guard and user id, ok is false when no
// guard authenticated the request.
func (r *Request) Principal() (guard, userID string, ok bool) {
	if r == nil {
		return "", "", false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.guard, r.userID, r.userID != ""
}

// WithRequest attaches r to ctx.
func WithRequest(ctx context.Context, r *Request) context.Context {
	return context.WithValue(ctx, requestKey, r)
}

// SetRequest stores r on the echo context.
func SetRequest(c echo.Context, r *Request) {
	c.Set(echoRequestKey, r)
}

// RequestFrom returns the request record of ctx, or nil.
func RequestFrom(ctx context.Context) *Request {
	r, _ := ctx.Value(requestKey).(*Request)

	return r
}

// RequestIDFrom returns the request id of ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	if r := RequestFrom(ctx); r != nil {
		return r.ID
	}

	return ""
}

// RequestID returns the id the request-id middleware assigned to c.
func RequestID(c echo.Context) string {
	if r, ok := c.Get(echoRequestKey).(*Request); ok && r != nil {
		return r.ID
	}

	return RequestIDFrom(c.Request().Context())
}

// RecordPrincipal is SetPrincipal on the request record of ctx. It does
// nothing outside an HTTP request, e.g. in the worker or in tests.
func RecordPrincipal(ctx context.Context, guard, userID string) {
	RequestFrom(ctx).SetPrincipal(guard, userID)
}

// WithLogger returns a new context with the request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerOrDefault returns the request-scoped logger of ctx, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
