package domain

import (
	"github.com/google/uuid"
)

// CardIDLength is the length of a card short ID.
const CardIDLength = 8

// NewCardID produces a short card identifier: the first 8 characters of
// a random UUID, i.e. 8 lowercase hex characters (32 bits of entropy).
// That keeps share links short while making collisions negligible for
// the cardinality this application sees; no uniqueness check against the
// store is performed before assignment.
func NewCardID() string {
	return uuid.NewString()[:CardIDLength]
}

// ValidCardID reports whether s has the shape NewCardID produces.
func ValidCardID(s string) bool {
	if len(s) != CardIDLength {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
