package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/carol-api/internal/config"
	"github.com/phrazzld/carol-api/internal/generation"
	"github.com/phrazzld/carol-api/internal/platform/gemini"
	"github.com/phrazzld/carol-api/internal/platform/memory"
	"github.com/phrazzld/carol-api/internal/platform/openai"
	"github.com/phrazzld/carol-api/internal/platform/supabase"
	"github.com/phrazzld/carol-api/internal/service"
	"github.com/phrazzld/carol-api/internal/speech"
	"github.com/phrazzld/carol-api/internal/store"
)

// application holds the fully wired dependency graph. Everything is
// constructed exactly once at startup and shared by all request
// handlers; nothing is package-global.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	cardStore   store.CardStore
	cardService service.CardService
	generator   generation.Generator
	synthesizer speech.Synthesizer
	proxyClient *http.Client
}

// newApplication wires the application components from configuration.
// The card store backend is selected here, once; the rest of the app is
// oblivious to which variant is active.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	cardStore, err := selectCardStore(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize card store: %w", err)
	}

	cardService, err := service.NewCardService(cardStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize card service: %w", err)
	}

	generator, err := gemini.NewLyricsGenerator(ctx, logger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize lyrics generator: %w", err)
	}

	return &application{
		config:      cfg,
		logger:      logger,
		cardStore:   cardStore,
		cardService: cardService,
		generator:   generator,
		synthesizer: openai.NewSpeechClient(cfg.TTS, logger),
		proxyClient: &http.Client{},
	}, nil
}

// selectCardStore constructs the configured card store variant.
func selectCardStore(cfg *config.Config, logger *slog.Logger) (store.CardStore, error) {
	switch cfg.Store.Backend {
	case "supabase":
		logger.Info("using supabase card store",
			"url", cfg.Store.SupabaseURL,
			"table", cfg.Store.Table)
		return supabase.NewCardStore(
			cfg.Store.SupabaseURL,
			cfg.Store.SupabaseKey,
			cfg.Store.Table,
			logger,
		)
	case "memory":
		logger.Info("using in-memory card store; cards will not survive a restart")
		return memory.NewCardStore(logger), nil
	default:
		// Config validation keeps us from reaching this.
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
