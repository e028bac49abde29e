package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"gatehouse/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	localSubscription = "projects/local/subscriptions/auth-events-sub"

	// PushTokenIssuer is the issuer of locally signed push tokens.
	PushTokenIssuer = "gatehouse-local-pubsub"

	pushTokenTTL = 5 * time.Minute
)

// localHTTPPublisher implements EventPublisher by sending HTTP POST requests
// to a local endpoint, simulating Pub/Sub push behavior for development
type localHTTPPublisher struct {
	endpoint   string
	secret     []byte
	httpClient *http.Client
	now        func() time.Time
	logger     *slog.Logger
}

// PubSubPushMessage represents the structure of a Pub/Sub push message
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development.
// A non-empty secret signs every push with an HS256 bearer token.
func NewLocalHTTPPublisher(endpoint, secret string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		secret:   []byte(secret),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		now:    time.Now,
		logger: logger,
	}
}

// PublishAuthEvent publishes an event by sending HTTP POST to the local endpoint
func (p *localHTTPPublisher) PublishAuthEvent(ctx context.Context, event *service.AuthEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	pushMsg := PubSubPushMessage{
		Subscription: localSubscription,
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = uuid.New().String()
	pushMsg.Message.PublishTime = p.now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = eventAttributes(event)

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Add X-Request-Id header for tracing
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	if len(p.secret) > 0 {
		token, err := p.signPushToken()
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Debug("[LocalPubSub] Event published",
		slog.String("endpoint", p.endpoint),
		slog.String("event", event.Name),
	)

	return nil
}

// signPushToken issues a short-lived token whose audience is the push endpoint.
func (p *localHTTPPublisher) signPushToken() (string, error) {
	now := p.now()
	claims := jwt.RegisteredClaims{
		Issuer:    PushTokenIssuer,
		Audience:  jwt.ClaimStrings{p.endpoint},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(pushTokenTTL)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign push token")
	}

	return signed, nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
