// Command migrate creates or updates the authentication tables.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"gatehouse/config"
	logs "gatehouse/internal/infra/log"
	"gatehouse/internal/infra/persistence/postgres"
)

const migrateTimeout = 2 * time.Minute

func main() {
	if err := run(); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}

	logger.Info("Migration completed")

	return nil
}
