package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/carol-api/internal/domain"
	"github.com/phrazzld/carol-api/internal/store"
)

// CardServiceError is a custom error type for card service errors.
type CardServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for CardServiceError.
func (e *CardServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("card service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("card service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *CardServiceError) Unwrap() error {
	return e.Err
}

// NewCardServiceError creates a new CardServiceError.
func NewCardServiceError(operation, message string, err error) *CardServiceError {
	return &CardServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// CardService provides card-related operations.
type CardService interface {
	// CreateCard assigns a fresh short ID to the payload, persists the
	// full card, and returns the new ID. Either the write fully succeeds
	// or no ID is returned; no partial state is visible to the caller.
	CreateCard(ctx context.Context, fields domain.CardFields) (string, error)

	// GetCard retrieves a card by its short ID. A not-found outcome from
	// the store passes through distinguishably (store.ErrCardNotFound).
	GetCard(ctx context.Context, id string) (*domain.Card, error)
}

// cardServiceImpl implements the CardService interface.
type cardServiceImpl struct {
	cardStore store.CardStore
	logger    *slog.Logger
}

// NewCardService creates a new CardService.
// It returns an error if any of the required dependencies are nil.
func NewCardService(cardStore store.CardStore, logger *slog.Logger) (CardService, error) {
	if cardStore == nil {
		return nil, NewCardServiceError("init", "card store cannot be nil", nil)
	}
	if logger == nil {
		return nil, NewCardServiceError("init", "logger cannot be nil", nil)
	}

	return &cardServiceImpl{
		cardStore: cardStore,
		logger:    logger.With(slog.String("component", "card_service")),
	}, nil
}

// CreateCard implements CardService.CreateCard.
func (s *cardServiceImpl) CreateCard(ctx context.Context, fields domain.CardFields) (string, error) {
	card, err := domain.NewCard(fields)
	if err != nil {
		return "", NewCardServiceError("create", "invalid card", err)
	}

	if err := s.cardStore.Create(ctx, card); err != nil {
		return "", NewCardServiceError("create", "failed to save card", err)
	}

	s.logger.DebugContext(ctx, "card created", slog.String("card_id", card.ID))
	return card.ID, nil
}

// GetCard implements CardService.GetCard.
func (s *cardServiceImpl) GetCard(ctx context.Context, id string) (*domain.Card, error) {
	card, err := s.cardStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		return nil, NewCardServiceError("get", "failed to retrieve card", err)
	}

	return card, nil
}
