package api

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/phrazzld/carol-api/internal/api/shared"
)

// ProxyHandler streams a remote audio resource back to the caller with
// permissive CORS headers, so browser audio elements can play resources
// whose origin does not send CORS headers itself. The resource is an
// opaque byte stream; nothing is cached or validated.
type ProxyHandler struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// NewProxyHandler creates a new ProxyHandler. A nil httpClient selects
// http.DefaultClient.
func NewProxyHandler(httpClient *http.Client, logger *slog.Logger) *ProxyHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ProxyHandler")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &ProxyHandler{
		httpClient: httpClient,
		logger:     logger.With(slog.String("component", "proxy_handler")),
	}
}

// ProxyAudio handles GET /api/audio-proxy?url=... requests.
// Upstream Content-Type, Content-Length and Accept-Ranges are forwarded;
// the upstream status code passes through unchanged.
func (h *ProxyHandler) ProxyAudio(w http.ResponseWriter, r *http.Request) {
	targetURL := r.URL.Query().Get("url")
	if targetURL == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing URL")
		return
	}

	// Tied to the request context: a client disconnect cancels the
	// upstream fetch.
	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, targetURL, nil)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid URL", err)
		return
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Audio proxy error", err)
		return
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			h.logger.Warn("failed to close upstream body", slog.String("error", err.Error()))
		}
	}()

	w.Header().Set("Access-Control-Allow-Origin", "*")

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "audio/mpeg"
	}
	w.Header().Set("Content-Type", contentType)

	if cl := resp.Header.Get("Content-Length"); cl != "" {
		w.Header().Set("Content-Length", cl)
	}

	acceptRanges := resp.Header.Get("Accept-Ranges")
	if acceptRanges == "" {
		acceptRanges = "bytes"
	}
	w.Header().Set("Accept-Ranges", acceptRanges)

	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		h.logger.Error("failed to stream proxied audio",
			slog.String("url", targetURL),
			slog.String("error", err.Error()))
	}
}
