package domain

import (
	"errors"
)

// Card-specific validation errors
var (
	// ErrCardIDEmpty is returned when a card ID is empty.
	ErrCardIDEmpty = errors.New("card ID cannot be empty")

	// ErrCardIDInvalid is returned when a card ID does not have the
	// expected short-ID shape.
	ErrCardIDInvalid = errors.New("card ID must be 8 lowercase hex characters")
)

// Card represents a shareable greeting-card record: the addressee, the
// occasion, the song lyrics, and an opaque reference to a synthesized or
// external audio resource. Cards are write-once, read-many; there is no
// update or delete in the public contract.
type Card struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Occasion   string `json:"occasion"`
	Lyrics     string `json:"lyrics"`
	AudioURL   string `json:"audioUrl"`
	MelodyText string `json:"melodyText"`
}

// CardFields holds the client-supplied portion of a card. The ID is
// always assigned server-side, never taken from the client.
type CardFields struct {
	Name       string
	Occasion   string
	Lyrics     string
	AudioURL   string
	MelodyText string
}

// NewCard creates a new Card from client-supplied fields, assigning a
// fresh short ID. Missing optional fields stay empty strings.
// Returns an error if validation fails.
func NewCard(fields CardFields) (*Card, error) {
	card := &Card{
		ID:         NewCardID(),
		Name:       fields.Name,
		Occasion:   fields.Occasion,
		Lyrics:     fields.Lyrics,
		AudioURL:   fields.AudioURL,
		MelodyText: fields.MelodyText,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Card has valid data.
// Name, occasion, lyrics and the audio URL are free text and deliberately
// not validated for content; only the ID shape is enforced.
func (c *Card) Validate() error {
	if c.ID == "" {
		return ErrCardIDEmpty
	}

	if !ValidCardID(c.ID) {
		return ErrCardIDInvalid
	}

	return nil
}
