package main

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/mdhasanali39/taskQuest-server/internal/config"
	"github.com/mdhasanali39/taskQuest-server/internal/platform/postgres"
	"github.com/mdhasanali39/taskQuest-server/internal/redact"
)

// handleMigrations runs a goose command against the PostgreSQL schema.
// The Mongo driver keeps no schema, so migrations are rejected for it.
func handleMigrations(ctx context.Context, cfg *config.Config, command string) error {
	if cfg.Database.Driver != config.DriverPostgres {
		return fmt.Errorf("migrations require the %q driver, configured driver is %q",
			config.DriverPostgres, cfg.Database.Driver)
	}
	if !slices.Contains(postgres.MigrationCommands, command) {
		return fmt.Errorf("unsupported migration command %q", command)
	}

	// A correlation ID ties together every log line of one migration run.
	migrationLogger := slog.Default().With(
		"correlation_id", uuid.NewString(),
		"component", "migrations",
		"command", command,
	)

	startTime := time.Now()
	migrationLogger.Info("Starting migration operation",
		"operation", fmt.Sprintf("goose %s", command))

	db, err := postgres.Connect(ctx, cfg.Database.URL, storeTimeout(cfg.Database))
	if err != nil {
		migrationLogger.Error("Failed to connect to database", "error", redact.Error(err))
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			migrationLogger.Error("Error closing database connection", "error", err)
		}
	}()

	if err := postgres.RunMigrations(ctx, db, migrationLogger, command); err != nil {
		migrationLogger.Error("Migration operation failed",
			"error", redact.Error(err),
			"duration_ms", time.Since(startTime).Milliseconds())
		return err
	}

	migrationLogger.Info("Migration operation completed",
		"duration_ms", time.Since(startTime).Milliseconds())
	return nil
}
