// Package supabase provides a store implementation backed by a hosted
// Supabase (PostgREST) data service reached over HTTPS. Persistence and
// lifecycle of the stored rows are entirely the remote service's concern.
package supabase

import (
	"context"
	"encoding/json"
	"log/slog"

	supa "github.com/supabase-community/supabase-go"

	"github.com/phrazzld/carol-api/internal/domain"
	"github.com/phrazzld/carol-api/internal/store"
)

// CardStore implements the store.CardStore interface against a Supabase
// table. Both operations are single-shot: no retry, no timeout override
// beyond the transport default, no pagination (at most one row per ID).
type CardStore struct {
	client *supa.Client
	table  string
	logger *slog.Logger
}

// NewCardStore creates a Supabase-backed implementation of the CardStore
// interface. The API key authenticates every request; the table holds
// one row per card. If logger is nil, a default logger will be used.
func NewCardStore(url, apiKey, table string, logger *slog.Logger) (*CardStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	client, err := supa.NewClient(url, apiKey, nil)
	if err != nil {
		return nil, store.NewStoreError("card", "init", "failed to create supabase client", err)
	}

	return &CardStore{
		client: client,
		table:  table,
		logger: logger.With(slog.String("component", "supabase_card_store")),
	}, nil
}

// Ensure CardStore implements store.CardStore interface
var _ store.CardStore = (*CardStore)(nil)

// Create implements store.CardStore.Create.
// It issues a single insert carrying the full card record. A non-success
// response from the data service is surfaced as a StoreError.
func (s *CardStore) Create(ctx context.Context, card *domain.Card) error {
	_, _, err := s.client.From(s.table).
		Insert(rowFromCard(card), false, "", "minimal", "").
		Execute()
	if err != nil {
		s.logger.ErrorContext(ctx, "supabase insert failed",
			slog.String("card_id", card.ID),
			slog.String("error", err.Error()))
		return store.NewStoreError("card", "create", "supabase insert failed", err)
	}

	s.logger.DebugContext(ctx, "card stored", slog.String("card_id", card.ID))
	return nil
}

// GetByID implements store.CardStore.GetByID.
// It issues a single filtered query keyed by ID. An empty result set is
// store.ErrCardNotFound; a non-success response is a StoreError.
func (s *CardStore) GetByID(ctx context.Context, id string) (*domain.Card, error) {
	data, _, err := s.client.From(s.table).
		Select("*", "", false).
		Eq("id", id).
		Execute()
	if err != nil {
		s.logger.ErrorContext(ctx, "supabase select failed",
			slog.String("card_id", id),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("card", "get", "supabase select failed", err)
	}

	var rows []cardRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, store.NewStoreError("card", "get", "failed to decode supabase response", err)
	}

	if len(rows) == 0 {
		return nil, store.ErrCardNotFound
	}

	return rows[0].toCard(), nil
}
