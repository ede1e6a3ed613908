package store

import (
	"context"

	"github.com/phrazzld/carol-api/internal/domain"
)

// CardStore defines the interface for card persistence. Exactly one of
// the two implementations (memory, supabase) is constructed at process
// start and shared by all request handlers; everything above this
// interface is oblivious to which one is active.
type CardStore interface {
	// Create saves a card under its ID. The write is a full record,
	// never partial. Writing an ID that already exists overwrites it,
	// though in practice IDs are never reassigned (write-once).
	Create(ctx context.Context, card *domain.Card) error

	// GetByID retrieves a card by its short ID.
	// Returns ErrCardNotFound if the card does not exist.
	GetByID(ctx context.Context, id string) (*domain.Card, error)
}
