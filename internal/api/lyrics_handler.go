package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/carol-api/internal/api/shared"
	"github.com/phrazzld/carol-api/internal/generation"
)

// GenerateLyricsRequest represents the request body for lyric generation.
type GenerateLyricsRequest struct {
	Name     string `json:"name"`
	Occasion string `json:"occasion"`
	Prompt   string `json:"prompt"`
	Mood     string `json:"mood"`
}

// GenerateLyricsResponse carries the generated lyric text.
type GenerateLyricsResponse struct {
	Lyrics string `json:"lyrics"`
}

// LyricsHandler handles lyric-generation HTTP requests. It is a thin
// pass-through to the LLM provider and does not touch the card store.
type LyricsHandler struct {
	generator generation.Generator
	logger    *slog.Logger
}

// NewLyricsHandler creates a new LyricsHandler
func NewLyricsHandler(generator generation.Generator, logger *slog.Logger) *LyricsHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for LyricsHandler")
	}

	return &LyricsHandler{
		generator: generator,
		logger:    logger.With(slog.String("component", "lyrics_handler")),
	}
}

// GenerateLyrics handles POST /api/generate requests.
func (h *LyricsHandler) GenerateLyrics(w http.ResponseWriter, r *http.Request) {
	var req GenerateLyricsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	lyrics, err := h.generator.GenerateLyrics(r.Context(), generation.LyricsRequest{
		Name:     req.Name,
		Occasion: req.Occasion,
		Prompt:   req.Prompt,
		Mood:     req.Mood,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate lyrics", err)
		return
	}

	h.logger.Debug("lyrics generated", slog.Int("length", len(lyrics)))
	shared.RespondWithJSON(w, r, http.StatusOK, GenerateLyricsResponse{Lyrics: lyrics})
}
