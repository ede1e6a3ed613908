package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/carol-api/internal/generation"
	"github.com/phrazzld/carol-api/internal/service"
	"github.com/phrazzld/carol-api/internal/speech"
	"github.com/phrazzld/carol-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"card not found", store.ErrCardNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", store.ErrCardNotFound), http.StatusNotFound},
		{"store error", store.NewStoreError("card", "create", "boom", nil), http.StatusInternalServerError},
		{"service error", service.NewCardServiceError("create", "boom", nil), http.StatusInternalServerError},
		{"generation error", generation.ErrGenerationFailed, http.StatusInternalServerError},
		{"unknown error", errors.New("anything"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := MapErrorToStatusCode(tc.err); got != tc.want {
				t.Errorf("Expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"card not found", store.ErrCardNotFound, "Card not found"},
		{"generation failed", generation.ErrGenerationFailed, "Failed to generate lyrics"},
		{"content blocked", fmt.Errorf("call: %w", generation.ErrContentBlocked), "Failed to generate lyrics"},
		{"synthesis failed", speech.ErrSynthesisFailed, "Failed to generate speech"},
		{"store error leaks nothing", store.NewStoreError("card", "create", "https://internal.endpoint", nil), "An unexpected error occurred"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := GetSafeErrorMessage(tc.err); got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}
