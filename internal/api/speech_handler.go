package api

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/phrazzld/carol-api/internal/api/shared"
	"github.com/phrazzld/carol-api/internal/speech"
)

// SpeechRequest represents the request body for speech synthesis.
// Voice is optional; the configured default applies when empty.
type SpeechRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
}

// SpeechHandler handles text-to-speech HTTP requests. It streams the
// provider's audio bytes straight through to the client.
type SpeechHandler struct {
	synthesizer speech.Synthesizer
	logger      *slog.Logger
}

// NewSpeechHandler creates a new SpeechHandler
func NewSpeechHandler(synthesizer speech.Synthesizer, logger *slog.Logger) *SpeechHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for SpeechHandler")
	}

	return &SpeechHandler{
		synthesizer: synthesizer,
		logger:      logger.With(slog.String("component", "speech_handler")),
	}
}

// Synthesize handles POST /api/speech (JSON body) and GET /api/speech
// (query parameters) requests.
func (h *SpeechHandler) Synthesize(w http.ResponseWriter, r *http.Request) {
	var req SpeechRequest
	if r.Method == http.MethodGet {
		req.Text = r.URL.Query().Get("text")
		req.Voice = r.URL.Query().Get("voice")
	} else {
		if err := shared.DecodeJSON(r, &req); err != nil && err != io.EOF {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
			return
		}
	}

	if req.Text == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Text is required")
		return
	}

	result, err := h.synthesizer.Synthesize(r.Context(), req.Text, req.Voice)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate speech", err)
		return
	}
	defer func() {
		if err := result.Audio.Close(); err != nil {
			h.logger.Warn("failed to close audio stream", slog.String("error", err.Error()))
		}
	}()

	w.Header().Set("Content-Type", result.ContentType)
	if result.Length >= 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(result.Length, 10))
	}
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, result.Audio); err != nil {
		// Headers are gone already; all we can do is log.
		h.logger.Error("failed to stream audio to client", slog.String("error", err.Error()))
	}
}
