package vocab

import (
	"strings"
	"sync"

	"wordspace/internal/domain"
)

// Store is the ordered, append-only vocabulary. Words keep their
// insertion index for the lifetime of the store; the first appended
// vector establishes the dimensionality for all later appends.
type Store struct {
	mu        sync.RWMutex
	entries   []domain.Entry
	byLookup  map[string]int
	dimension int
	revision  uint64
}

// NewStore creates an empty vocabulary.
func NewStore() *Store {
	return &Store{byLookup: make(map[string]int)}
}

// Append adds a word with its vector and returns the new stable index.
// Duplicate words (case-insensitive) and vectors that do not match the
// established dimensionality are rejected without changing the store.
func (s *Store) Append(word string, vector []float64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lookup := strings.ToLower(word)
	if _, ok := s.byLookup[lookup]; ok {
		return 0, domain.ErrDuplicateWord
	}
	if s.dimension == 0 {
		if len(vector) == 0 {
			return 0, domain.ErrDimensionMismatch
		}
		s.dimension = len(vector)
	} else if len(vector) != s.dimension {
		return 0, domain.ErrDimensionMismatch
	}
	idx := len(s.entries)
	vec := make([]float64, len(vector))
	copy(vec, vector)
	s.entries = append(s.entries, domain.Entry{Word: word, Vector: vec, Index: idx})
	s.byLookup[lookup] = idx
	s.revision++
	return idx, nil
}

// Get returns the entry for a word (case-insensitive).
func (s *Store) Get(word string) (domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.byLookup[strings.ToLower(word)]
	if !ok {
		return domain.Entry{}, domain.ErrNotFound
	}
	return s.entries[idx], nil
}

// Snapshot returns a point-in-time copy of all entries in insertion
// order, tagged with the revision at capture time. Appends after the
// call are not reflected in the returned snapshot.
func (s *Store) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]domain.Entry, len(s.entries))
	copy(entries, s.entries)
	return domain.Snapshot{Entries: entries, Revision: s.revision}
}

// Len returns the number of words in the vocabulary.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Dimension returns the established vector dimensionality, or 0 while
// the store is empty.
func (s *Store) Dimension() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dimension
}

// Revision returns the current mutation counter. Each successful
// Append bumps it; a snapshot whose revision no longer matches is
// stale.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}
