package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gatehouse/config"
	deliverycontext "gatehouse/internal/delivery/context"
	"gatehouse/internal/domain/constants"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/service"
	"gatehouse/internal/infra/pubsub"
	mockusecase "gatehouse/internal/mocks/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

const (
	testPushSecret   = "push-secret"
	testPushEndpoint = "http://localhost:8081/push"
)

func testEvent() service.AuthEvent {
	event := service.NewAuthEvent(service.SessionAuthGroup, service.LoginSucceeded, "web",
		time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	event.UserID = "7b0b5c8e-4f8e-4d39-a1a4-1c1f5b0b4f6e"
	event.RequestID = "req-from-event"

	return event
}

func pushBody(t *testing.T, event any, attributes map[string]string) []byte {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PubSubPushMessage
	msg.Subscription = "projects/local/subscriptions/auth-events-sub"
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func signPushToken(t *testing.T, secret, issuer, audience string, expiresAt time.Time) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		Audience:  jwt.ClaimStrings{audience},
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func postPush(h *PushHandler, body []byte, authorization string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func localConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvProduction
	cfg.PubSub = &config.PubSubConfig{
		Provider:      constants.PubSubProviderLocal,
		LocalEndpoint: testPushEndpoint,
		PushSecret:    testPushSecret,
	}

	return cfg
}

func TestPushHandler_HandlePush(t *testing.T) {
	t.Parallel()

	validToken := "Bearer " + signPushToken(t, testPushSecret, pubsub.PushTokenIssuer, testPushEndpoint, time.Now().Add(time.Minute))

	tests := []struct {
		name          string
		body          func(t *testing.T) []byte
		authorization string
		recordErr     error
		expectRecord  bool
		wantStatus    int
	}{
		{
			name:          "records event",
			body:          func(t *testing.T) []byte { return pushBody(t, testEvent(), nil) },
			authorization: validToken,
			expectRecord:  true,
			wantStatus:    http.StatusOK,
		},
		{
			name:       "rejects unsigned push",
			body:       func(t *testing.T) []byte { return pushBody(t, testEvent(), nil) },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:          "rejects wrong secret",
			body:          func(t *testing.T) []byte { return pushBody(t, testEvent(), nil) },
			authorization: "Bearer " + signPushToken(t, "other", pubsub.PushTokenIssuer, testPushEndpoint, time.Now().Add(time.Minute)),
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "rejects expired token",
			body:          func(t *testing.T) []byte { return pushBody(t, testEvent(), nil) },
			authorization: "Bearer " + signPushToken(t, testPushSecret, pubsub.PushTokenIssuer, testPushEndpoint, time.Now().Add(-time.Minute)),
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "rejects foreign audience",
			body:          func(t *testing.T) []byte { return pushBody(t, testEvent(), nil) },
			authorization: "Bearer " + signPushToken(t, testPushSecret, pubsub.PushTokenIssuer, "http://elsewhere/push", time.Now().Add(time.Minute)),
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name: "rejects undecodable data",
			body: func(t *testing.T) []byte {
				return []byte(`{"message":{"data":"%%%","messageId":"m"}}`)
			},
			authorization: validToken,
			wantStatus:    http.StatusBadRequest,
		},
		{
			name:          "acknowledges unattributable event",
			body:          func(t *testing.T) []byte { return pushBody(t, testEvent(), nil) },
			authorization: validToken,
			recordErr:     domainerrors.ErrValidationFailed.WrapMessage("guard is required"),
			expectRecord:  true,
			wantStatus:    http.StatusOK,
		},
		{
			name:          "asks for redelivery on failure",
			body:          func(t *testing.T) []byte { return pushBody(t, testEvent(), nil) },
			authorization: validToken,
			recordErr:     assert.AnError,
			expectRecord:  true,
			wantStatus:    http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			audit := mockusecase.NewMockAuditUsecase(t)
			if tt.expectRecord {
				audit.EXPECT().Record(mock.Anything, mock.MatchedBy(func(event *service.AuthEvent) bool {
					return event.Name == "session_auth:login_succeeded" && event.Guard == "web"
				})).Return(tt.recordErr).Once()
			}

			h := NewPushHandler(PushHandlerParams{
				Verifier: NewPushVerifier(localConfig()),
				Audit:    audit,
				Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
			})

			rec := postPush(h, tt.body(t), tt.authorization)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_RequestIDPropagation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		attributes map[string]string
		want       string
	}{
		{name: "message attribute wins", attributes: map[string]string{"request_id": "req-from-attr"}, want: "req-from-attr"},
		{name: "event field is fallback", want: "req-from-event"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got string
			audit := mockusecase.NewMockAuditUsecase(t)
			audit.EXPECT().Record(mock.Anything, mock.Anything).Return(
				func(ctx context.Context, _ *service.AuthEvent) error {
					got = deliverycontext.RequestIDFrom(ctx)

					return nil
				},
			).Once()

			h := NewPushHandler(PushHandlerParams{
				Verifier: noopVerifier{},
				Audit:    audit,
				Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
			})

			rec := postPush(h, pushBody(t, testEvent(), tt.attributes), "")

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewPushVerifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cfg   func() *config.Config
		check func(t *testing.T, v PushVerifier)
	}{
		{
			name: "no pubsub config",
			cfg:  func() *config.Config { return &config.Config{} },
			check: func(t *testing.T, v PushVerifier) {
				assert.IsType(t, noopVerifier{}, v)
			},
		},
		{
			name: "local with secret",
			cfg:  localConfig,
			check: func(t *testing.T, v PushVerifier) {
				assert.IsType(t, &sharedSecretVerifier{}, v)
			},
		},
		{
			name: "local without secret",
			cfg: func() *config.Config {
				cfg := localConfig()
				cfg.PubSub.PushSecret = ""

				return cfg
			},
			check: func(t *testing.T, v PushVerifier) {
				assert.IsType(t, noopVerifier{}, v)
			},
		},
		{
			name: "google in production",
			cfg: func() *config.Config {
				cfg := localConfig()
				cfg.PubSub.Provider = constants.PubSubProviderGoogle
				cfg.PubSub.PushAudience = "https://worker.example.com/push"

				return cfg
			},
			check: func(t *testing.T, v PushVerifier) {
				require.IsType(t, &googleIDTokenVerifier{}, v)
				assert.Equal(t, "https://worker.example.com/push", v.(*googleIDTokenVerifier).audience)
			},
		},
		{
			name: "google in development",
			cfg: func() *config.Config {
				cfg := localConfig()
				cfg.Env.Env = constants.EnvDevelop
				cfg.PubSub.Provider = constants.PubSubProviderGoogle

				return cfg
			},
			check: func(t *testing.T, v PushVerifier) {
				assert.IsType(t, noopVerifier{}, v)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tt.check(t, NewPushVerifier(tt.cfg()))
		})
	}
}

func TestGoogleIDTokenVerifier_Verify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		authorization string
		payload       *idtoken.Payload
		validateErr   error
		wantAudience  string
		wantErr       bool
	}{
		{
			name:          "accepts google issuer",
			authorization: "Bearer id-token",
			payload:       &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}},
			wantAudience:  "http://example.com/push",
		},
		{
			name:          "rejects other issuer",
			authorization: "Bearer id-token",
			payload:       &idtoken.Payload{Issuer: "https://evil.example.com"},
			wantAudience:  "http://example.com/push",
			wantErr:       true,
		},
		{
			name:          "rejects unverified email",
			authorization: "Bearer id-token",
			payload:       &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": false}},
			wantAudience:  "http://example.com/push",
			wantErr:       true,
		},
		{
			name:          "propagates validation failure",
			authorization: "Bearer id-token",
			validateErr:   assert.AnError,
			wantAudience:  "http://example.com/push",
			wantErr:       true,
		},
		{
			name:    "requires bearer token",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotAudience string
			v := &googleIDTokenVerifier{
				validate: func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
					assert.Equal(t, "id-token", token)
					gotAudience = audience

					return tt.payload, tt.validateErr
				},
			}

			req := httptest.NewRequest(http.MethodPost, "http://example.com/push", nil)
			if tt.authorization != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.authorization)
			}

			err := v.Verify(req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantAudience, gotAudience)
		})
	}
}
