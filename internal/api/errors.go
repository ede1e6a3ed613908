package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/carol-api/internal/generation"
	"github.com/phrazzld/carol-api/internal/speech"
	"github.com/phrazzld/carol-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. Unknown card IDs are the one case that
// maps to 404; every other failure is a generic 500.
func MapErrorToStatusCode(err error) int {
	switch {
	case store.IsNotFoundError(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking internal details (store
// endpoints, provider responses) to clients.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrCardNotFound):
		return "Card not found"

	case store.IsNotFoundError(err):
		return "Not found"

	case errors.Is(err, generation.ErrContentBlocked),
		errors.Is(err, generation.ErrInvalidResponse),
		errors.Is(err, generation.ErrGenerationFailed):
		return "Failed to generate lyrics"

	case errors.Is(err, speech.ErrSynthesisFailed):
		return "Failed to generate speech"

	default:
		return "An unexpected error occurred"
	}
}
