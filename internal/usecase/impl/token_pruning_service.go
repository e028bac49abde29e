package impl

import (
	"context"
	"log/slog"
	"time"

	"gatehouse/internal/domain/repository"
	"gatehouse/internal/errors"
	"gatehouse/internal/usecase"
)

// tokenPruningService implements the TokenPruningUsecase interface.
type tokenPruningService struct {
	txManager repository.TransactionManager
	now       func() time.Time
	logger    *slog.Logger
}

// NewTokenPruningService is the constructor for tokenPruningService.
func NewTokenPruningService(txManager repository.TransactionManager, logger *slog.Logger) usecase.TokenPruningUsecase {
	return &tokenPruningService{
		txManager: txManager,
		now:       time.Now,
		logger:    logger,
	}
}

// PruneExpired deletes expired remember-me and access tokens in one transaction.
func (srv *tokenPruningService) PruneExpired(ctx context.Context) (*usecase.PruneResult, error) {
	now := srv.now().UTC()
	result := &usecase.PruneResult{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		removed, err := repoFactory.RememberMeTokenRepo().DeleteExpired(ctx, now)
		if err != nil {
			return errors.Wrap(err, "failed to delete expired remember me tokens")
		}
		result.RememberMeTokens = removed

		removed, err = repoFactory.AccessTokenRepo().DeleteExpired(ctx, now)
		if err != nil {
			return errors.Wrap(err, "failed to delete expired access tokens")
		}
		result.AccessTokens = removed

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to prune expired tokens", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to prune expired tokens")
	}

	srv.logger.Info("Pruned expired tokens",
		slog.Int64("remember_me_tokens", result.RememberMeTokens),
		slog.Int64("access_tokens", result.AccessTokens),
	)

	return result, nil
}
