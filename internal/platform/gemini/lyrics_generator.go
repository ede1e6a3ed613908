// Package gemini implements the generation.Generator interface using
// Google's Gemini API.
package gemini

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"google.golang.org/genai"

	"github.com/phrazzld/carol-api/internal/config"
	"github.com/phrazzld/carol-api/internal/generation"
)

// promptTemplate is the fixed instruction template for the songwriting
// prompt. The persona styling matters: the lyrics are meant to sit on
// top of music in the requested artist's manner.
const promptTemplate = `You are a professional songwriter and copywriter. Write the lyrics of a short congratulatory song (two quatrains).
Addressee: {{.Name}}. Occasion: {{.Occasion}}.
Meaning/details from the customer: "{{.Prompt}}".
IMPORTANT: the lyrics must be styled after the artist/style: {{.Mood}}.
Keep that performer's signature phrasing, rhythm and atmosphere (rhymes, slang, delivery) so the text fits that kind of music naturally.
No preamble, output only the congratulation lyrics.`

// Generation parameters, matching the short-completion contract:
// a little creative variance, hard cap well under a full song's length.
const (
	temperature     = 0.7
	maxOutputTokens = 150
)

// LyricsGenerator implements generation.Generator using the Gemini API.
type LyricsGenerator struct {
	logger *slog.Logger
	client *genai.Client
	tmpl   *template.Template
	model  string
}

// NewLyricsGenerator creates a new instance of LyricsGenerator with the
// provided dependencies. Returns a properly initialized generator or an
// error if initialization fails.
func NewLyricsGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*LyricsGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	// An unset API key must not prevent startup: generation requests
	// then fail at call time. The client stays nil in that case.
	var client *genai.Client
	if cfg.GeminiAPIKey != "" {
		c, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
				generation.ErrInvalidConfig, err)
		}
		client = c
	}

	tmpl, err := template.New("lyrics").Parse(promptTemplate)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v",
			generation.ErrInvalidConfig, err)
	}

	return &LyricsGenerator{
		logger: logger.With(slog.String("component", "lyrics_generator")),
		client: client,
		tmpl:   tmpl,
		model:  cfg.ModelName,
	}, nil
}

// Ensure LyricsGenerator implements generation.Generator
var _ generation.Generator = (*LyricsGenerator)(nil)

// GenerateLyrics implements generation.Generator. The provider call is
// single-shot: failures surface immediately, retry policy is the
// caller's concern (and deliberately absent in this system).
func (g *LyricsGenerator) GenerateLyrics(ctx context.Context, req generation.LyricsRequest) (string, error) {
	if g.client == nil {
		return "", fmt.Errorf("%w: no API key configured", generation.ErrGenerationFailed)
	}

	prompt, err := g.createPrompt(req)
	if err != nil {
		return "", err
	}

	g.logger.DebugContext(ctx, "calling Gemini",
		slog.String("model", g.model),
		slog.Int("prompt_length", len(prompt)))

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr[float32](temperature),
			MaxOutputTokens: maxOutputTokens,
		})
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini API call failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	return extractText(resp)
}

// createPrompt renders the prompt template with the request fields.
func (g *LyricsGenerator) createPrompt(req generation.LyricsRequest) (string, error) {
	var buf bytes.Buffer
	if err := g.tmpl.Execute(&buf, req); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	return buf.String(), nil
}

// extractText pulls the lyric text out of a generation response,
// mapping empty and safety-blocked responses to generation sentinels.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: finish reason safety", generation.ErrContentBlocked)
	}
	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("%w: empty text in response", generation.ErrInvalidResponse)
	}

	return text, nil
}
