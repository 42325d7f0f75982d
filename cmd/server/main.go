// Package main implements the entry point for the BrandForge API server,
// which forwards marketing-content requests to LLM and image-generation
// providers and persists user-selected results.
package main

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/brandforge/brandforge-api/internal/config"
	"github.com/brandforge/brandforge-api/internal/platform/logger"
)

func main() {
	// A missing .env is fine; real deployments set environment variables
	// directly.
	if err := godotenv.Load(); err == nil {
		fmt.Println("Loaded configuration from .env")
	}

	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if err := app.run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, and wires the
// application components.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Bool("gemini_configured", cfg.LLM.GeminiAPIKey != ""),
		slog.Bool("groq_configured", cfg.LLM.GroqAPIKey != ""),
		slog.Bool("huggingface_configured", cfg.Image.HuggingFaceAPIKey != ""),
		slog.Bool("image_fallback_enabled", cfg.Image.FallbackEnabled))

	return newApplication(cfg, appLogger)
}
