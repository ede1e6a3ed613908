package main

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/phrazzld/carol-api/internal/api"
	apiMiddleware "github.com/phrazzld/carol-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // Add trace IDs for improved error handling

	// The front end may be served from a different origin than the API.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// Create API handlers using the application's services
	cardHandler := api.NewCardHandler(app.cardService, app.logger)
	lyricsHandler := api.NewLyricsHandler(app.generator, app.logger)
	speechHandler := api.NewSpeechHandler(app.synthesizer, app.logger)
	proxyHandler := api.NewProxyHandler(app.proxyClient, app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Card persistence endpoints
		r.Post("/cards", cardHandler.CreateCard)
		r.Get("/cards/{id}", cardHandler.GetCard)

		// Provider pass-through endpoints
		r.Post("/generate", lyricsHandler.GenerateLyrics)
		r.Post("/speech", speechHandler.Synthesize)
		r.Get("/speech", speechHandler.Synthesize)
		r.Get("/audio-proxy", proxyHandler.ProxyAudio)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	// Front-end bundle, when configured
	if dir := app.config.Server.StaticDir; dir != "" {
		indexPath := filepath.Join(dir, "index.html")
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.ServeFile(w, r, indexPath)
		})
		r.Handle("/*", http.FileServer(http.Dir(dir)))
	}

	return r
}
