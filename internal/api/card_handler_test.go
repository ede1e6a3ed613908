package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/carol-api/internal/domain"
	"github.com/phrazzld/carol-api/internal/service"
	"github.com/phrazzld/carol-api/internal/store"
)

// mockCardService is a mock implementation of the CardService interface
type mockCardService struct {
	createFn func(ctx context.Context, fields domain.CardFields) (string, error)
	getFn    func(ctx context.Context, id string) (*domain.Card, error)
}

func (m *mockCardService) CreateCard(ctx context.Context, fields domain.CardFields) (string, error) {
	return m.createFn(ctx, fields)
}

func (m *mockCardService) GetCard(ctx context.Context, id string) (*domain.Card, error) {
	return m.getFn(ctx, id)
}

func TestCreateCard(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		serviceID      string
		serviceError   error
		expectedStatus int
		expectedID     string
		expectedError  string
	}{
		{
			name:           "Success",
			body:           `{"name":"Anna","occasion":"Birthday","lyrics":"La la la","audioUrl":"http://x/a.mp3","melodyText":""}`,
			serviceID:      "0a1b2c3d",
			expectedStatus: http.StatusOK,
			expectedID:     "0a1b2c3d",
		},
		{
			name:           "Store Failure",
			body:           `{"name":"Anna"}`,
			serviceError:   service.NewCardServiceError("create", "failed to save card", store.NewStoreError("card", "create", "supabase insert failed", nil)),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Failed to save card",
		},
		{
			name:           "Malformed JSON",
			body:           `{"name":`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request format",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &mockCardService{
				createFn: func(ctx context.Context, fields domain.CardFields) (string, error) {
					return tc.serviceID, tc.serviceError
				},
			}

			handler := NewCardHandler(mockService, slog.Default())

			req := httptest.NewRequest("POST", "/api/cards", bytes.NewBufferString(tc.body))
			recorder := httptest.NewRecorder()
			handler.CreateCard(recorder, req)

			if recorder.Code != tc.expectedStatus {
				t.Fatalf("Expected status %d, got %d", tc.expectedStatus, recorder.Code)
			}

			var body map[string]interface{}
			if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
				t.Fatalf("Failed to parse response body: %v", err)
			}

			if tc.expectedID != "" {
				if body["id"] != tc.expectedID {
					t.Errorf("Expected id %q, got %v", tc.expectedID, body["id"])
				}
				if _, hasError := body["error"]; hasError {
					t.Error("Success response must not carry an error field")
				}
			}

			if tc.expectedError != "" {
				if body["error"] != tc.expectedError {
					t.Errorf("Expected error %q, got %v", tc.expectedError, body["error"])
				}
				if _, hasID := body["id"]; hasID {
					t.Error("No ID may be returned to the client on failure")
				}
			}
		})
	}
}

// getCardRequest builds a GET request routed through chi so that
// chi.URLParam sees the id path parameter.
func getCardRequest(id string) *http.Request {
	req := httptest.NewRequest("GET", "/api/cards/"+id, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetCard(t *testing.T) {
	storedCard := &domain.Card{
		ID:         "0a1b2c3d",
		Name:       "Anna",
		Occasion:   "Birthday",
		Lyrics:     "La la la",
		AudioURL:   "http://x/a.mp3",
		MelodyText: "",
	}

	tests := []struct {
		name           string
		id             string
		serviceCard    *domain.Card
		serviceError   error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Success",
			id:             "0a1b2c3d",
			serviceCard:    storedCard,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Not Found",
			id:             "doesnotexist",
			serviceError:   store.ErrCardNotFound,
			expectedStatus: http.StatusNotFound,
			expectedError:  "Card not found",
		},
		{
			name:           "Store Failure",
			id:             "0a1b2c3d",
			serviceError:   service.NewCardServiceError("get", "failed to retrieve card", nil),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Failed to retrieve card",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &mockCardService{
				getFn: func(ctx context.Context, id string) (*domain.Card, error) {
					return tc.serviceCard, tc.serviceError
				},
			}

			handler := NewCardHandler(mockService, slog.Default())

			recorder := httptest.NewRecorder()
			handler.GetCard(recorder, getCardRequest(tc.id))

			if recorder.Code != tc.expectedStatus {
				t.Fatalf("Expected status %d, got %d", tc.expectedStatus, recorder.Code)
			}

			var body map[string]interface{}
			if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
				t.Fatalf("Failed to parse response body: %v", err)
			}

			if tc.expectedError != "" {
				if body["error"] != tc.expectedError {
					t.Errorf("Expected error %q, got %v", tc.expectedError, body["error"])
				}
				return
			}

			// The public shape echoes the stored fields and nothing else.
			expected := map[string]interface{}{
				"name":       "Anna",
				"occasion":   "Birthday",
				"lyrics":     "La la la",
				"audioUrl":   "http://x/a.mp3",
				"melodyText": "",
			}
			for key, want := range expected {
				if body[key] != want {
					t.Errorf("Expected %s=%q, got %v", key, want, body[key])
				}
			}
			if _, hasID := body["id"]; hasID {
				t.Error("The public card shape does not echo the ID")
			}
		})
	}
}
