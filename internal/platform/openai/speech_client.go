// Package openai provides a client for the OpenAI text-to-speech REST
// API, implementing the speech.Synthesizer port.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/phrazzld/carol-api/internal/config"
	"github.com/phrazzld/carol-api/internal/speech"
)

const (
	// BaseURL is the OpenAI API root.
	BaseURL = "https://api.openai.com/v1"

	// Model is the speech model used for all synthesis requests.
	Model = "tts-1"
)

// SpeechClient calls the OpenAI audio/speech endpoint. The playback
// speed is fixed at construction; voice is per-request with a configured
// default.
type SpeechClient struct {
	apiKey     string
	voice      string
	speed      float64
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewSpeechClient creates a new OpenAI speech client from configuration.
// If logger is nil, a default logger will be used.
func NewSpeechClient(cfg config.TTSConfig, logger *slog.Logger) *SpeechClient {
	if logger == nil {
		logger = slog.Default()
	}

	return &SpeechClient{
		apiKey:     cfg.OpenAIAPIKey,
		voice:      cfg.Voice,
		speed:      cfg.Speed,
		baseURL:    BaseURL,
		httpClient: &http.Client{},
		logger:     logger.With(slog.String("component", "speech_client")),
	}
}

// Ensure SpeechClient implements speech.Synthesizer
var _ speech.Synthesizer = (*SpeechClient)(nil)

// speechRequest is the wire shape of an audio/speech request.
type speechRequest struct {
	Model string  `json:"model"`
	Input string  `json:"input"`
	Voice string  `json:"voice"`
	Speed float64 `json:"speed"`
}

// Synthesize implements speech.Synthesizer. The returned audio stream is
// the provider's response body; the caller must close it.
func (c *SpeechClient) Synthesize(ctx context.Context, text, voice string) (*speech.Result, error) {
	if voice == "" {
		voice = c.voice
	}

	payload, err := json.Marshal(speechRequest{
		Model: Model,
		Input: text,
		Voice: voice,
		Speed: c.speed,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", speech.ErrSynthesisFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/audio/speech", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", speech.ErrSynthesisFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", speech.ErrSynthesisFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		// Read a short slice of the body for the log; the provider's
		// error JSON is not forwarded to clients.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		if err := resp.Body.Close(); err != nil {
			c.logger.WarnContext(ctx, "failed to close response body", slog.String("error", err.Error()))
		}
		c.logger.ErrorContext(ctx, "speech synthesis rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)))
		return nil, fmt.Errorf("%w: provider returned status %d", speech.ErrSynthesisFailed, resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "audio/mpeg"
	}

	return &speech.Result{
		Audio:       resp.Body,
		ContentType: contentType,
		Length:      resp.ContentLength,
	}, nil
}
