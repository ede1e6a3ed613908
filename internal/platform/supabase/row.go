package supabase

import (
	"github.com/phrazzld/carol-api/internal/domain"
)

// cardRow is the wire shape of a card in the Supabase table. The table
// schema uses snake_case column names, so the mapping between the domain
// model and the row lives here, in one auditable unit, rather than as
// inline per-field renames at call sites.
type cardRow struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Occasion   string `json:"occasion"`
	Lyrics     string `json:"lyrics"`
	AudioURL   string `json:"audio_url"`
	MelodyText string `json:"melody_text"`
}

func rowFromCard(c *domain.Card) cardRow {
	return cardRow{
		ID:         c.ID,
		Name:       c.Name,
		Occasion:   c.Occasion,
		Lyrics:     c.Lyrics,
		AudioURL:   c.AudioURL,
		MelodyText: c.MelodyText,
	}
}

func (r cardRow) toCard() *domain.Card {
	return &domain.Card{
		ID:         r.ID,
		Name:       r.Name,
		Occasion:   r.Occasion,
		Lyrics:     r.Lyrics,
		AudioURL:   r.AudioURL,
		MelodyText: r.MelodyText,
	}
}
