package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apimiddleware "gatehouse/internal/delivery/api/middleware"
	"gatehouse/internal/delivery/api/validator"
	"gatehouse/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	method string
	route  string
	path   string
	body   string
	header http.Header
	setup  func(c echo.Context)
}

// serve runs h behind the same validator and error handler as the API server.
func serve(t *testing.T, h echo.HandlerFunc, r testRequest) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	route := r.route
	if route == "" {
		route = r.path
	}

	e.Add(r.method, route, h, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if r.setup != nil {
				r.setup(c)
			}

			return next(c)
		}
	})

	var body io.Reader
	if r.body != "" {
		body = strings.NewReader(r.body)
	}

	req := httptest.NewRequest(r.method, r.path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range r.header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return out
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	body := decodeBody(t, rec)
	errInfo, ok := body["error"].(map[string]any)
	require.True(t, ok, "response has no error object: %s", rec.Body.String())

	code, _ := errInfo["code"].(string)

	return code
}

func newTestUser() *entity.User {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	return &entity.User{
		ID:           uuid.New(),
		Email:        "ada@example.com",
		Name:         "Ada",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func newTestAccessToken(owner uuid.UUID, abilities ...string) *entity.AccessToken {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	return &entity.AccessToken{
		Identifier:  uuid.New(),
		TokenableID: owner,
		Type:        "auth_token",
		Hash:        "digest",
		Abilities:   abilities,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
