// Package main implements the entry point for the Sinalize API server,
// which backs a children's sign-language learning app: it generates
// bilingual study content and roadmaps through an LLM, illustrates content
// through an image-generation provider, and persists everything in Postgres.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/sinalize/sinalize-api/internal/config"
	"github.com/sinalize/sinalize-api/internal/platform/logger"
	"github.com/sinalize/sinalize-api/internal/platform/postgres"
)

// main wires configuration, logging, the database, and the application
// dependencies together, then runs the HTTP server until shutdown.
func main() {
	ctx := context.Background()

	app, err := initializeApp(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
func initializeApp(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	if err := postgres.RunMigrations(ctx, db, appLogger); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	app, err := newApplication(ctx, cfg, appLogger, db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}

	return app, nil
}
