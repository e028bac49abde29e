package usecase

import "context"

// PruneResult counts the rows removed by one pruning run.
type PruneResult struct {
	RememberMeTokens int64
	AccessTokens     int64
}

// TokenPruningUsecase removes expired tokens from storage.
type TokenPruningUsecase interface {
	PruneExpired(ctx context.Context) (*PruneResult, error)
}
