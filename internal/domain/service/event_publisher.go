package service

import (
	"context"
	"time"
)

// Guard event groups.
const (
	SessionAuthGroup      = "session_auth"
	AccessTokensAuthGroup = "access_tokens_auth"
)

// AuthEventType is the outcome an AuthEvent reports.
type AuthEventType string

const (
	AuthenticationAttempted AuthEventType = "authentication_attempted"
	AuthenticationSucceeded AuthEventType = "authentication_succeeded"
	AuthenticationFailed    AuthEventType = "authentication_failed"
	LoginAttempted          AuthEventType = "login_attempted"
	LoginSucceeded          AuthEventType = "login_succeeded"
	LoginFailed             AuthEventType = "login_failed"
	CredentialsVerified     AuthEventType = "credentials_verified"
	LoggedOut               AuthEventType = "logged_out"
)

// EventName joins a group and an event type, e.g. "session_auth:login_succeeded".
func EventName(group string, eventType AuthEventType) string {
	return group + ":" + string(eventType)
}

// AuthEvent is emitted by guards. It never carries secrets.
type AuthEvent struct {
	Name        string        `json:"name"`
	Group       string        `json:"group"`
	Type        AuthEventType `json:"type"`
	Guard       string        `json:"guard"`
	RequestID   string        `json:"request_id,omitempty"` // For distributed tracing
	SessionID   string        `json:"session_id,omitempty"`
	UserID      string        `json:"user_id,omitempty"`
	UID         string        `json:"uid,omitempty"` // Login identifier of a failed credential check
	TokenID     string        `json:"token_id,omitempty"`
	Remember    bool          `json:"remember,omitempty"`
	ViaRemember bool          `json:"via_remember,omitempty"`
	Error       string        `json:"error,omitempty"`
	OccurredAt  time.Time     `json:"occurred_at"`
}

// NewAuthEvent starts an event for guard in group.
func NewAuthEvent(group string, eventType AuthEventType, guard string, occurredAt time.Time) AuthEvent {
	return AuthEvent{
		Name:       EventName(group, eventType),
		Group:      group,
		Type:       eventType,
		Guard:      guard,
		OccurredAt: occurredAt.UTC(),
	}
}

// EventSink receives guard events. Emit must not block the caller on delivery.
type EventSink interface {
	Emit(ctx context.Context, event AuthEvent)
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAuthEvent publishes an auth event for async processing
	PublishAuthEvent(ctx context.Context, event *AuthEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
