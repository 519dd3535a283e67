package utils

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var newUUIDv7 = uuid.NewV7

var errNilID = errors.New("nil uuid is not a record id")

// GenerateUUIDv7 generates a new UUID v7
func GenerateUUIDv7() uuid.UUID {
	id, err := newUUIDv7()
	if err != nil {
		// Fallback to v4 if v7 fails (highly unlikely)
		return uuid.New()
	}
	return id
}

// EnsureID assigns a fresh v7 id when id is still the zero value.
func EnsureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = GenerateUUIDv7()
	}
}

// ParseID parses a record id taken from a URL path. The nil UUID is rejected.
func ParseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, err
	}
	if id == uuid.Nil {
		return uuid.Nil, errNilID
	}
	return id, nil
}
