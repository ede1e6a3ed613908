package openai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/carol-api/internal/config"
	"github.com/phrazzld/carol-api/internal/speech"
)

func testConfig() config.TTSConfig {
	return config.TTSConfig{
		OpenAIAPIKey: "test-key",
		Voice:        "alloy",
		Speed:        0.85,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestClient points the client at a local test server standing in for
// the provider.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*SpeechClient, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewSpeechClient(testConfig(), discardLogger())
	client.baseURL = server.URL
	return client, server
}

func TestSynthesizeSendsProviderRequest(t *testing.T) {
	t.Parallel()

	var (
		gotPath string
		gotAuth string
		gotBody speechRequest
	)
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("mp3-bytes"))
	})

	result, err := client.Synthesize(context.Background(), "Happy birthday Alice", "nova")
	require.NoError(t, err)
	defer func() { _ = result.Audio.Close() }()

	assert.Equal(t, "/audio/speech", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, Model, gotBody.Model)
	assert.Equal(t, "Happy birthday Alice", gotBody.Input)
	assert.Equal(t, "nova", gotBody.Voice)
	assert.InDelta(t, 0.85, gotBody.Speed, 1e-9)

	audio, err := io.ReadAll(result.Audio)
	require.NoError(t, err)
	assert.Equal(t, "mp3-bytes", string(audio))
	assert.Equal(t, "audio/mpeg", result.ContentType)
}

func TestSynthesizeDefaultVoice(t *testing.T) {
	t.Parallel()

	var gotBody speechRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte("ok"))
	})

	result, err := client.Synthesize(context.Background(), "Congratulations", "")
	require.NoError(t, err)
	_ = result.Audio.Close()

	assert.Equal(t, "alloy", gotBody.Voice, "empty voice should fall back to the configured default")
}

func TestSynthesizeDefaultContentType(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// No explicit Content-Type; Go would sniff, so clear it.
		w.Header()["Content-Type"] = nil
		_, _ = w.Write([]byte{0xff, 0xfb}) // mp3 frame sync bytes
	})

	result, err := client.Synthesize(context.Background(), "hello", "")
	require.NoError(t, err)
	defer func() { _ = result.Audio.Close() }()

	assert.Equal(t, "audio/mpeg", result.ContentType)
}

func TestSynthesizeProviderError(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key"}}`))
	})

	result, err := client.Synthesize(context.Background(), "hello", "")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, speech.ErrSynthesisFailed),
		"provider errors should wrap ErrSynthesisFailed, got: %v", err)
}

func TestSynthesizeConnectionError(t *testing.T) {
	t.Parallel()

	client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	result, err := client.Synthesize(context.Background(), "hello", "")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, speech.ErrSynthesisFailed))
}
