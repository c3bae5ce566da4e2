package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateWord is returned when a word already exists in the
	// vocabulary (case-insensitive).
	ErrDuplicateWord = errors.New("word already exists")

	// ErrDimensionMismatch is returned when a vector's length differs
	// from the store's established dimensionality.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrNotFound is returned when a word is not in the vocabulary.
	ErrNotFound = errors.New("word not found")

	// ErrProviderUnavailable is returned once the remote encoder has
	// failed to load; the state is terminal for the process lifetime.
	ErrProviderUnavailable = errors.New("embedding provider unavailable")

	// ErrTooFewVectors is returned when a projection is requested with
	// fewer than two vectors.
	ErrTooFewVectors = errors.New("too few vectors to project")
)

// ValidationError reports rejected user input with a message suitable
// for direct display.
type ValidationError struct {
	Input  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid word %q: %s", e.Input, e.Reason)
}
