// Package main implements the entry point for the carol API server,
// which generates greeting-song lyrics via an LLM, synthesizes speech,
// proxies remote audio, and persists shareable card records behind
// short identifiers.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/carol-api/internal/config"
	"github.com/phrazzld/carol-api/internal/platform/logger"
)

func main() {
	app, err := initializeApp(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
func initializeApp(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"store_backend", cfg.Store.Backend)

	// Presence of provider keys is worth knowing at startup; requests
	// against a missing key fail at call time.
	if cfg.LLM.GeminiAPIKey == "" {
		slog.Warn("Gemini API key not set; lyric generation will fail")
	}
	if cfg.TTS.OpenAIAPIKey == "" {
		slog.Warn("OpenAI API key not set; speech synthesis will fail")
	}

	return newApplication(ctx, cfg, appLogger)
}
