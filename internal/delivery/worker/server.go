package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"gatehouse/config"
	"gatehouse/internal/delivery"
	"gatehouse/internal/delivery/middleware"
	"gatehouse/internal/delivery/worker/handler"
	"gatehouse/internal/domain/lifecycle"
	"gatehouse/internal/errors"
	"gatehouse/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	Metrics     *metrics.AuthMetrics
	PushHandler *handler.PushHandler
}

// NewServer creates the audit worker HTTP server
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: NewEcho(params),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho builds the worker routes without starting a listener.
func NewEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Set up middleware in correct order
	// 1. Recover middleware first (to catch panics early)
	e.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	e.Use(requestIDMiddleware.Process)

	// 3. Logger middleware
	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	e.Use(loggerMiddleware.Handle)

	e.Use(params.Metrics.Middleware())

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	if params.Cfg.Metrics.Enabled {
		e.GET(params.Cfg.Metrics.Path, echo.WrapHandler(params.Metrics.Handler()))
	}

	// Pub/Sub push endpoint
	e.POST("/push", params.PushHandler.HandlePush)

	return e
}

// Serve starts the worker HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.Worker.Port))
	s.logger.Info("Starting Worker HTTP server", slog.String("host_port", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// stop gracefully shuts down the worker server
func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Worker HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
