package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a referenced record is absent or its identifier is malformed.
	ErrNotFound = errors.New("not found")
	// ErrBadRequest is returned for inputs that can never succeed (bad terms, inverted ranges).
	ErrBadRequest = errors.New("bad request")
	// ErrConflict is reserved for state conflicts. Nothing in the billing core raises it yet.
	ErrConflict = errors.New("conflict")
)

// ParseID parses a record identifier. A malformed identifier is reported as not found,
// the same way an unknown one is.
func ParseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: malformed identifier %q", ErrNotFound, raw)
	}
	return id, nil
}
