package usecase

import (
	"context"

	"gatehouse/internal/domain/service"
)

// AuditUsecase records auth events delivered to the worker.
type AuditUsecase interface {
	// Record fails with ErrValidationFailed for events that cannot be attributed.
	Record(ctx context.Context, event *service.AuthEvent) error
}
