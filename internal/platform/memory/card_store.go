// Package memory provides an in-process implementation of the store
// interfaces. Contents do not survive a restart; this backend exists for
// deployments whose filesystem/process model forbids local durable
// storage, and for tests.
package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/phrazzld/carol-api/internal/domain"
	"github.com/phrazzld/carol-api/internal/store"
)

// CardStore implements the store.CardStore interface with a process-local
// map. There is no eviction and no size bound: cards accumulate until the
// process exits. That is a known, accepted limitation of this backend.
type CardStore struct {
	mu     sync.RWMutex
	cards  map[string]domain.Card
	logger *slog.Logger
}

// NewCardStore creates a new in-memory implementation of the CardStore
// interface. If logger is nil, a default logger will be used.
func NewCardStore(logger *slog.Logger) *CardStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &CardStore{
		cards:  make(map[string]domain.Card),
		logger: logger.With(slog.String("component", "memory_card_store")),
	}
}

// Ensure CardStore implements store.CardStore interface
var _ store.CardStore = (*CardStore)(nil)

// Create implements store.CardStore.Create.
// It is an unconditional insert/overwrite, idempotent by ID. The card is
// stored by value so later mutation of the caller's struct cannot reach
// into the store.
func (s *CardStore) Create(ctx context.Context, card *domain.Card) error {
	s.mu.Lock()
	s.cards[card.ID] = *card
	s.mu.Unlock()

	s.logger.DebugContext(ctx, "card stored", slog.String("card_id", card.ID))
	return nil
}

// GetByID implements store.CardStore.GetByID.
// Returns store.ErrCardNotFound if the card does not exist.
func (s *CardStore) GetByID(ctx context.Context, id string) (*domain.Card, error) {
	s.mu.RLock()
	card, ok := s.cards[id]
	s.mu.RUnlock()

	if !ok {
		return nil, store.ErrCardNotFound
	}

	return &card, nil
}

// Len reports the number of stored cards. Used by tests and diagnostics.
func (s *CardStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cards)
}
