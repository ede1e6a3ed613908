// Package api provides HTTP handlers for the API.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/carol-api/internal/api/shared"
	"github.com/phrazzld/carol-api/internal/domain"
	"github.com/phrazzld/carol-api/internal/service"
	"github.com/phrazzld/carol-api/internal/store"
)

// CreateCardRequest represents the request body for saving a card.
// All fields are free text from the client; none are required beyond
// presence of a JSON body. The ID is never client-supplied.
type CreateCardRequest struct {
	Name       string `json:"name"`
	Occasion   string `json:"occasion"`
	Lyrics     string `json:"lyrics"`
	AudioURL   string `json:"audioUrl"`
	MelodyText string `json:"melodyText"`
}

// CreateCardResponse carries the assigned short ID back to the client.
type CreateCardResponse struct {
	ID string `json:"id"`
}

// CardResponse is the public shape of a stored card. The ID is the
// lookup key the client already holds, so it is not echoed back.
type CardResponse struct {
	Name       string `json:"name"`
	Occasion   string `json:"occasion"`
	Lyrics     string `json:"lyrics"`
	AudioURL   string `json:"audioUrl"`
	MelodyText string `json:"melodyText"`
}

// CardHandler handles card-related HTTP requests
type CardHandler struct {
	cardService service.CardService
	logger      *slog.Logger
}

// NewCardHandler creates a new CardHandler
func NewCardHandler(cardService service.CardService, logger *slog.Logger) *CardHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CardHandler")
	}

	return &CardHandler{
		cardService: cardService,
		logger:      logger.With(slog.String("component", "card_handler")),
	}
}

// CreateCard handles POST /api/cards requests.
// It persists the payload under a freshly assigned short ID and returns
// the ID, or a 500 if the store rejects the write (no ID is returned in
// that case).
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	var req CreateCardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := h.cardService.CreateCard(r.Context(), domain.CardFields{
		Name:       req.Name,
		Occasion:   req.Occasion,
		Lyrics:     req.Lyrics,
		AudioURL:   req.AudioURL,
		MelodyText: req.MelodyText,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to save card", err)
		return
	}

	h.logger.Debug("card saved", slog.String("card_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, CreateCardResponse{ID: id})
}

// GetCard handles GET /api/cards/{id} requests.
func (h *CardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Card ID is required")
		return
	}

	card, err := h.cardService.GetCard(r.Context(), id)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError && !store.IsNotFoundError(err) {
			safeMessage = "Failed to retrieve card"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardToResponse(card))
}

// cardToResponse converts a domain.Card to its public shape.
func cardToResponse(card *domain.Card) CardResponse {
	return CardResponse{
		Name:       card.Name,
		Occasion:   card.Occasion,
		Lyrics:     card.Lyrics,
		AudioURL:   card.AudioURL,
		MelodyText: card.MelodyText,
	}
}
