package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mdhasanali39/taskQuest-server/internal/config"
	"github.com/mdhasanali39/taskQuest-server/internal/platform/logger"
	"github.com/mdhasanali39/taskQuest-server/internal/platform/mongodb"
	"github.com/mdhasanali39/taskQuest-server/internal/platform/postgres"
	"github.com/mdhasanali39/taskQuest-server/internal/store"
)

// openTaskStore connects to the store selected by cfg.Driver.
func openTaskStore(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (store.TaskStore, error) {
	timeout := storeTimeout(cfg)
	log = log.With("component", "database", "driver", cfg.Driver)

	switch cfg.Driver {
	case config.DriverMongo:
		connectCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		taskStore, err := mongodb.Open(connectCtx, mongodb.Options{
			URI:        cfg.URL,
			Database:   cfg.Name,
			Collection: cfg.Collection,
			Timeout:    timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open mongo task store: %w", err)
		}
		log.Info("Connected to MongoDB", "database", cfg.Name, "collection", cfg.Collection)
		return taskStore, nil

	case config.DriverPostgres:
		db, err := postgres.Open(logger.WithContext(ctx, log), cfg.URL, timeout)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres task store: %w", err)
		}
		log.Info("Connected to PostgreSQL")
		return postgres.NewPostgresTaskStore(db), nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
