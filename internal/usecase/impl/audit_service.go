package impl

import (
	"context"
	"log/slog"

	deliverycontext "gatehouse/internal/delivery/context"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/service"
	"gatehouse/internal/usecase"
)

// auditService writes one structured log line per auth event.
type auditService struct {
	logger *slog.Logger
}

// NewAuditService is the constructor for auditService.
func NewAuditService(logger *slog.Logger) usecase.AuditUsecase {
	return &auditService{logger: logger.With(slog.String("component", "audit"))}
}

func (srv *auditService) Record(ctx context.Context, event *service.AuthEvent) error {
	if event == nil || event.Guard == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("auth event has no guard")
	}

	switch event.Group {
	case service.SessionAuthGroup, service.AccessTokensAuthGroup:
	default:
		return domainerrors.ErrValidationFailed.WrapMessage("unknown auth event group " + event.Group)
	}

	if event.Name != service.EventName(event.Group, event.Type) {
		return domainerrors.ErrValidationFailed.WrapMessage("auth event name does not match its type")
	}

	attrs := []slog.Attr{
		slog.String("event", event.Name),
		slog.String("guard", event.Guard),
		slog.Time("occurred_at", event.OccurredAt),
	}
	if event.UserID != "" {
		attrs = append(attrs, slog.String("user_id", event.UserID))
	}
	if event.UID != "" {
		attrs = append(attrs, slog.String("uid", event.UID))
	}
	if event.SessionID != "" {
		attrs = append(attrs, slog.String("session_id", event.SessionID))
	}
	if event.TokenID != "" {
		attrs = append(attrs, slog.String("token_id", event.TokenID))
	}
	if event.Remember {
		attrs = append(attrs, slog.Bool("remember", true))
	}
	if event.ViaRemember {
		attrs = append(attrs, slog.Bool("via_remember", true))
	}
	if event.Error != "" {
		attrs = append(attrs, slog.String("reason", event.Error))
	}

	level := slog.LevelInfo
	switch event.Type {
	case service.AuthenticationFailed, service.LoginFailed:
		level = slog.LevelWarn
	case service.AuthenticationAttempted, service.LoginAttempted:
		level = slog.LevelDebug
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).LogAttrs(ctx, level, "Auth event", attrs...)

	return nil
}
