// Package handler contains the HTTP handlers of the audit worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"

	deliverycontext "gatehouse/internal/delivery/context"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/service"
	"gatehouse/internal/errors"
	"gatehouse/internal/infra/pubsub"
	"gatehouse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PushHandler receives auth events pushed by Pub/Sub and records them.
type PushHandler struct {
	verifier PushVerifier
	audit    usecase.AuditUsecase
	logger   *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Verifier PushVerifier
	Audit    usecase.AuditUsecase
	Logger   *slog.Logger
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	return &PushHandler{
		verifier: params.Verifier,
		audit:    params.Audit,
		logger:   params.Logger,
	}
}

// HandlePush acknowledges with 2xx unless the event should be redelivered.
// Events that can never be recorded are acknowledged so Pub/Sub stops retrying.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.verifier.Verify(c.Request()); err != nil {
		h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

		return c.NoContent(http.StatusUnauthorized)
	}

	var pushMsg pubsub.PubSubPushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.AuthEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse auth event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequest(ctx, deliverycontext.NewRequest(requestID))
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.audit.Record(ctx, &event); err != nil {
		if errors.Is(err, domainerrors.ErrValidationFailed) {
			reqLogger.Warn("[Worker] Dropping unattributable auth event",
				slog.String("message_id", pushMsg.Message.MessageID),
				slog.Any("error", err),
			)

			return c.NoContent(http.StatusOK)
		}

		reqLogger.Error("[Worker] Failed to record auth event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the
// request header, then a new id.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PubSubPushMessage, event *service.AuthEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.RequestIDFrom(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}
