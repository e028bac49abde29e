package main

import (
	"context"
	"log/slog"
	"os"

	"gatehouse/config"
	"gatehouse/internal/delivery"
	"gatehouse/internal/delivery/api"
	"gatehouse/internal/delivery/api/middleware"
	"gatehouse/internal/delivery/api/router/handler"
	"gatehouse/internal/infra/auth"
	"gatehouse/internal/infra/cookie"
	"gatehouse/internal/infra/events"
	logs "gatehouse/internal/infra/log"
	"gatehouse/internal/infra/metrics"
	"gatehouse/internal/infra/persistence/postgres"
	"gatehouse/internal/infra/pubsub"
	"gatehouse/internal/infra/redis"
	"gatehouse/internal/infra/session"
	"gatehouse/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			redis.New,
			metrics.New,
			cookie.NewFactory,
			session.NewStore,
			session.NewManager,
			events.NewEventSink,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewRememberMeTokenRepository,
			postgres.NewAccessTokenRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewDatabaseUserProvider,
			auth.NewAccessTokenProvider,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewGuardFactory,
			impl.NewUserService,
			impl.NewAccessTokenService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewTokenHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
