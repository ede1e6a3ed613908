package generation

import (
	"context"
)

// LyricsRequest carries the client-supplied fields interpolated into the
// songwriting prompt. All fields are free text.
type LyricsRequest struct {
	Name     string
	Occasion string
	Prompt   string
	Mood     string
}

// Generator defines the interface for generating greeting-song lyrics.
// This interface is the boundary between the application core and the
// external LLM provider.
type Generator interface {
	// GenerateLyrics produces lyric text for the given request, or an
	// error if generation fails (see errors.go for specific types).
	GenerateLyrics(ctx context.Context, req LyricsRequest) (string, error)
}
