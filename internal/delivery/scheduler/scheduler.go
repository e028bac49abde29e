// Package scheduler runs the periodic jobs of the worker.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"gatehouse/config"
	"gatehouse/internal/domain/lifecycle"
	"gatehouse/internal/errors"
	"gatehouse/internal/infra/metrics"
	"gatehouse/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

const pruneTimeout = 5 * time.Minute

// Params holds dependencies for the Scheduler, injected by Fx
type Params struct {
	fx.In

	Lc      fx.Lifecycle
	Config  *config.Config
	Pruning usecase.TokenPruningUsecase
	Metrics *metrics.AuthMetrics
	Logger  *slog.Logger
}

// Scheduler prunes expired tokens on the configured cron schedule.
type Scheduler struct {
	cron    *cron.Cron
	pruning usecase.TokenPruningUsecase
	metrics *metrics.AuthMetrics
	logger  *slog.Logger
}

// New registers the pruning job and ties the cron runner to the lifecycle.
func New(params Params) (*Scheduler, error) {
	logger := params.Logger.With(slog.String("component", "scheduler"))
	cronLogger := slogCronLogger{logger: logger}

	s := &Scheduler{
		cron: cron.New(
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		pruning: params.Pruning,
		metrics: params.Metrics,
		logger:  logger,
	}

	if _, err := s.cron.AddFunc(params.Config.Pruning.Schedule, s.runPrune); err != nil {
		return nil, errors.Wrapf(err, "invalid pruning schedule %q", params.Config.Pruning.Schedule)
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			s.cron.Start()
			logger.Info("Scheduler started", slog.String("pruning_schedule", params.Config.Pruning.Schedule))

			return nil
		},
		OnStop: s.Stop,
	})

	return s, nil
}

func (s *Scheduler) runPrune() {
	ctx, cancel := context.WithTimeout(context.Background(), pruneTimeout)
	defer cancel()

	if err := s.Prune(ctx); err != nil {
		s.logger.Error("Token pruning failed", slog.Any("error", err))
	}
}

// Prune runs one pruning pass and records how many tokens it removed.
func (s *Scheduler) Prune(ctx context.Context) error {
	result, err := s.pruning.PruneExpired(ctx)
	if err != nil {
		return err
	}

	s.metrics.TokensPruned("remember_me", result.RememberMeTokens)
	s.metrics.TokensPruned("access", result.AccessTokens)

	return nil
}

// Stop waits for a running job, bounded by ctx.
func (s *Scheduler) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "scheduler did not stop in time")
	}
}

// slogCronLogger adapts slog to cron.Logger.
type slogCronLogger struct {
	logger *slog.Logger
}

func (l slogCronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l slogCronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append([]any{slog.Any("error", err)}, keysAndValues...)...)
}
