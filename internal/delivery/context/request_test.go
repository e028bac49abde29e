package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequest_Principal(t *testing.T) {
	request := NewRequest("req-1")
	ctx := WithRequest(context.Background(), request)

	_, _, ok := request.Principal()
	assert.False(t, ok)

	RecordPrincipal(ctx, "web", "user-1")
	RecordPrincipal(ctx, "api", "user-2")

	guard, userID, ok := RequestFrom(ctx).Principal()
	assert.True(t, ok)
	assert.Equal(t, "api", guard)
	assert.Equal(t, "user-2", userID)
	assert.Equal(t, "req-1", RequestIDFrom(ctx))
}

func TestRequest_WithoutRecord(t *testing.T) {
	ctx := context.Background()

	assert.NotPanics(t, func() { RecordPrincipal(ctx, "web", "user-1") })
	assert.Nil(t, RequestFrom(ctx))
	assert.Empty(t, RequestIDFrom(ctx))

	_, _, ok := RequestFrom(ctx).Principal()
	assert.False(t, ok)
}

func TestRequest_ConcurrentPrincipal(t *testing.T) {
	request := NewRequest("req-1")

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			request.SetPrincipal("web", "user-1")
		}()
		go func() {
			defer wg.Done()
			request.Principal()
		}()
	}
	wg.Wait()

	_, userID, ok := request.Principal()
	assert.True(t, ok)
	assert.Equal(t, "user-1", userID)
}

func TestRequestID(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	assert.Empty(t, RequestID(c))

	SetRequest(c, NewRequest("from-echo"))
	assert.Equal(t, "from-echo", RequestID(c))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithRequest(req.Context(), NewRequest("from-ctx")))
	c = e.NewContext(req, httptest.NewRecorder())
	assert.Equal(t, "from-ctx", RequestID(c))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}
