// Package speech defines the port for text-to-speech synthesis. The
// provider implementation lives under internal/platform.
package speech

import (
	"context"
	"errors"
	"io"
)

// ErrSynthesisFailed is returned when the TTS provider rejects or fails
// a synthesis request.
var ErrSynthesisFailed = errors.New("speech synthesis failed")

// Result holds the outcome of a synthesis call. The caller owns Audio
// and must close it.
type Result struct {
	Audio       io.ReadCloser // Audio stream, MP3 encoded
	ContentType string        // MIME type of the audio
	Length      int64         // Audio length in bytes (-1 if unknown)
}

// Synthesizer converts text to speech.
type Synthesizer interface {
	// Synthesize renders text as audio using the given voice. An empty
	// voice selects the provider default.
	Synthesize(ctx context.Context, text, voice string) (*Result, error)
}
