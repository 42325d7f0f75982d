package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/brandforge/brandforge-api/internal/api"
	"github.com/brandforge/brandforge-api/internal/config"
	"github.com/brandforge/brandforge-api/internal/generation"
	"github.com/brandforge/brandforge-api/internal/imagestore"
	"github.com/brandforge/brandforge-api/internal/platform/gemini"
	"github.com/brandforge/brandforge-api/internal/platform/groq"
	"github.com/brandforge/brandforge-api/internal/platform/huggingface"
	"github.com/brandforge/brandforge-api/internal/platform/pollinations"
	"github.com/brandforge/brandforge-api/internal/platform/postgres"
	"github.com/brandforge/brandforge-api/internal/service"
)

// application holds the wired components of the running server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB
	router http.Handler
}

// newApplication connects the database, runs migrations, constructs the
// providers and services, and builds the router.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	textTimeout := time.Duration(cfg.LLM.TimeoutSeconds) * time.Second
	imageTimeout := time.Duration(cfg.Image.TimeoutSeconds) * time.Second

	geminiProvider, err := gemini.New(context.Background(), logger, cfg.LLM.GeminiAPIKey, cfg.LLM.GeminiModel)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create gemini provider: %w", err)
	}

	groqProvider, err := groq.New(logger, cfg.LLM.GroqAPIKey, cfg.LLM.GroqModel,
		cfg.LLM.GroqWhisperModel, textTimeout)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create groq provider: %w", err)
	}

	// The light generative model goes first; the chat model is the fallback.
	chain := generation.NewFallbackChain(logger, geminiProvider, groqProvider)

	var backends []generation.ImageBackend
	if cfg.Image.HuggingFaceAPIKey != "" {
		for _, params := range huggingface.DefaultModels() {
			backend, err := huggingface.NewBackend(logger, cfg.Image.HuggingFaceAPIKey, params, imageTimeout)
			if err != nil {
				_ = db.Close()
				return nil, fmt.Errorf("failed to create image backend %s: %w", params.Model, err)
			}
			backends = append(backends, backend)
		}
	}

	var fallbackBackend generation.ImageBackend
	if cfg.Image.FallbackEnabled {
		fallback, err := pollinations.NewBackend(logger, imageTimeout)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to create fallback image backend: %w", err)
		}
		fallbackBackend = fallback
	}

	logoStore, err := imagestore.New(logger, cfg.Image.OutputDir)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create image store: %w", err)
	}

	studioService, err := service.NewStudioService(logger, chain)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create studio service: %w", err)
	}

	logoService, err := service.NewLogoService(logger, chain, backends, fallbackBackend, logoStore)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create logo service: %w", err)
	}

	var transcriber api.Transcriber
	if groqProvider.Configured() {
		transcriber = groqProvider
	}

	savedItemStore := postgres.NewPostgresSavedItemStore(db, logger)

	studioHandler := api.NewStudioHandler(studioService, logoService, transcriber, logger)
	savedItemHandler := api.NewSavedItemHandler(savedItemStore, logger)

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}
	app.router = app.buildRouter(studioHandler, savedItemHandler)
	return app, nil
}

// cleanup releases the application's resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", slog.String("error", err.Error()))
		}
	}
}
