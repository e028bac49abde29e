// Package redis builds the Redis client shared by Redis-backed stores.
package redis

import (
	"context"
	"log/slog"

	"gatehouse/config"
	"gatehouse/internal/domain/lifecycle"
	"gatehouse/internal/errors"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the Redis client when the session driver needs one.
// It returns nil otherwise; Redis is optional.
func New(params Params) (*goredis.Client, error) {
	if params.Config.Session == nil || params.Config.Session.Driver != "redis" {
		return nil, nil
	}

	client, err := Open(params.Config.Redis)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			params.Logger.Info("Connected to Redis", slog.String("addr", params.Config.Redis.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

// Open creates a client without lifecycle hooks.
func Open(cfg *config.RedisConfig) (*goredis.Client, error) {
	if cfg == nil || cfg.Addr == "" {
		return nil, errors.New("redis configuration is missing")
	}

	return goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}), nil
}
