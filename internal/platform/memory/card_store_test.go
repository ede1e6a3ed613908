package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/carol-api/internal/domain"
	"github.com/phrazzld/carol-api/internal/store"
)

func TestCardStoreRoundTrip(t *testing.T) {
	t.Parallel()
	s := NewCardStore(nil)
	ctx := context.Background()

	card, err := domain.NewCard(domain.CardFields{
		Name:       "Anna",
		Occasion:   "Birthday",
		Lyrics:     "La la la",
		AudioURL:   "http://x/a.mp3",
		MelodyText: "da da da",
	})
	require.NoError(t, err)

	require.NoError(t, s.Create(ctx, card))

	got, err := s.GetByID(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, card, got, "stored and retrieved cards should be identical")
}

func TestCardStoreNotFound(t *testing.T) {
	t.Parallel()
	s := NewCardStore(nil)

	got, err := s.GetByID(context.Background(), "doesnot1")
	assert.Nil(t, got, "unknown ID must never yield a partial or default card")
	assert.ErrorIs(t, err, store.ErrCardNotFound)
	assert.True(t, store.IsNotFoundError(err))
}

func TestCardStoreOverwrite(t *testing.T) {
	t.Parallel()
	s := NewCardStore(nil)
	ctx := context.Background()

	first := &domain.Card{ID: "0a1b2c3d", Name: "Anna"}
	second := &domain.Card{ID: "0a1b2c3d", Name: "Boris"}

	require.NoError(t, s.Create(ctx, first))
	require.NoError(t, s.Create(ctx, second))

	got, err := s.GetByID(ctx, "0a1b2c3d")
	require.NoError(t, err)
	assert.Equal(t, "Boris", got.Name, "Create is an unconditional insert/overwrite")
	assert.Equal(t, 1, s.Len())
}

func TestCardStoreCopies(t *testing.T) {
	t.Parallel()
	s := NewCardStore(nil)
	ctx := context.Background()

	card := &domain.Card{ID: "0a1b2c3d", Name: "Anna"}
	require.NoError(t, s.Create(ctx, card))

	// Mutating the caller's struct after the write must not reach the store.
	card.Name = "changed"

	got, err := s.GetByID(ctx, "0a1b2c3d")
	require.NoError(t, err)
	assert.Equal(t, "Anna", got.Name)

	// Nor should mutating a retrieved card.
	got.Name = "also changed"
	again, err := s.GetByID(ctx, "0a1b2c3d")
	require.NoError(t, err)
	assert.Equal(t, "Anna", again.Name)
}

func TestCardStoreConcurrentAccess(t *testing.T) {
	t.Parallel()
	s := NewCardStore(nil)
	ctx := context.Background()

	const writers = 50

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("%08x", n)
			if err := s.Create(ctx, &domain.Card{ID: id, Name: "concurrent"}); err != nil {
				t.Errorf("Create failed: %v", err)
				return
			}
			if _, err := s.GetByID(ctx, id); err != nil {
				t.Errorf("GetByID failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, writers, s.Len())

	// Reads of never-written IDs stay clean under load too.
	_, err := s.GetByID(ctx, "ffffffff")
	assert.True(t, errors.Is(err, store.ErrCardNotFound))
}
