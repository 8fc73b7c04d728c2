package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/sinalize/sinalize-api/internal/config"
	"github.com/sinalize/sinalize-api/internal/generation"
	"github.com/sinalize/sinalize-api/internal/platform/aimlapi"
	"github.com/sinalize/sinalize-api/internal/platform/gemini"
	"github.com/sinalize/sinalize-api/internal/platform/postgres"
	"github.com/sinalize/sinalize-api/internal/service"
	"github.com/sinalize/sinalize-api/internal/service/auth"
	"github.com/sinalize/sinalize-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore       store.UserStore
	collectionStore store.CollectionStore
	roadmapStore    store.RoadmapStore

	// Service interfaces
	jwtService   auth.JWTService
	generator    *gemini.Generator
	imageFetcher *generation.ImageFetcher

	contentService service.ContentService
	roadmapService service.RoadmapService
	chatService    service.ChatService
	introService   service.IntroductionService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	// Initialize stores
	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.collectionStore = postgres.NewPostgresCollectionStore(db, logger)
	app.roadmapStore = postgres.NewPostgresRoadmapStore(db, logger)

	// Create the LLM generator
	app.generator, err = gemini.NewGenerator(
		ctx,
		logger.With("component", "llm_generator"),
		cfg.LLM,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	logger.Info("LLM generator initialized successfully")

	// Create the image-generation client and fetcher
	imageClient, err := aimlapi.NewClient(cfg.ImageAPI)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize image client: %w", err)
	}
	app.imageFetcher = generation.NewImageFetcher(
		imageClient,
		generation.ImageFetcherConfig{
			MaxConcurrent: cfg.ImageAPI.MaxConcurrent,
			MaxAttempts:   cfg.ImageAPI.MaxAttempts,
		},
		logger.With("component", "image_fetcher"),
	)

	// Initialize content service
	app.contentService, err = service.NewContentService(
		store.NewSQLTxRunner(db),
		app.userStore,
		app.collectionStore,
		app.generator,
		app.imageFetcher,
		cfg.ImageAPI.InlineGeneration,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create content service: %w", err)
	}

	// Initialize roadmap service
	app.roadmapService, err = service.NewRoadmapService(
		app.userStore,
		app.roadmapStore,
		app.generator,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create roadmap service: %w", err)
	}

	// Initialize chat service
	app.chatService, err = service.NewChatService(app.generator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat service: %w", err)
	}

	// Initialize introduction service
	app.introService, err = service.NewIntroductionService(app.generator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create introduction service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
