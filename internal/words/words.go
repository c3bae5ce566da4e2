package words

import (
	"regexp"
	"strings"

	"wordspace/internal/domain"
)

// wordPattern accepts ASCII letters only; the fallback embedder maps
// characters relative to 'a', so anything outside a-z/A-Z is rejected
// at the door.
var wordPattern = regexp.MustCompile(`^[A-Za-z]+$`)

// Normalize validates raw user input and returns the original-case
// display form plus the lowercase form sent to embedders and used for
// case-insensitive identity.
func Normalize(raw string) (display, lookup string, err error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", "", &domain.ValidationError{Input: raw, Reason: "word is empty"}
	}
	if !wordPattern.MatchString(trimmed) {
		return "", "", &domain.ValidationError{Input: trimmed, Reason: "only letters are allowed"}
	}
	return trimmed, strings.ToLower(trimmed), nil
}
