package service

import (
	"errors"
	"log/slog"
	"sync"

	"wordspace/internal/domain"
	"wordspace/internal/selection"
	"wordspace/internal/words"
)

// SceneServiceImpl owns the vocabulary, the embedding provider, the
// layout client and the selection state, and serializes every mutation
// so the rendering layer always observes a consistent scene.
type SceneServiceImpl struct {
	mu        sync.Mutex
	store     domain.VectorStore
	provider  domain.Embedder
	projector domain.Projector
	selection *selection.Controller
	coords    []domain.Coordinate
	layoutRev uint64
	logger    *slog.Logger
}

// NewSceneService wires a scene service over its collaborators.
func NewSceneService(store domain.VectorStore, provider domain.Embedder, projector domain.Projector, logger *slog.Logger) *SceneServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &SceneServiceImpl{
		store:     store,
		provider:  provider,
		projector: projector,
		selection: selection.NewController(store),
		logger:    logger,
	}
}

// SeedWord validates, embeds and appends one seed-vocabulary word
// without recomputing the layout; call RefreshLayout once after
// seeding.
func (s *SceneServiceImpl) SeedWord(raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.addWordLocked(raw)
	return err
}

// AddWord embeds a new user-entered word, appends it, recomputes the
// layout and auto-selects the word. Validation, duplicate and
// dimension errors leave the scene unchanged. A layout failure does
// not undo the append; only the render step is held back.
func (s *SceneServiceImpl) AddWord(raw string) (domain.SceneView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	display, err := s.addWordLocked(raw)
	if err != nil {
		return s.viewLocked(), err
	}
	s.refreshLayoutLocked()
	if _, err := s.selection.WordAdded(display); err != nil {
		return s.viewLocked(), err
	}
	return s.viewLocked(), nil
}

// Select toggles the selection for an existing word and recomputes its
// highlighted neighbors.
func (s *SceneServiceImpl) Select(raw string) (domain.SceneView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.selection.Select(raw); err != nil {
		return s.viewLocked(), err
	}
	return s.viewLocked(), nil
}

// ClearSelection forces the idle selection state.
func (s *SceneServiceImpl) ClearSelection() domain.SceneView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Clear()
	return s.viewLocked()
}

// RefreshLayout recomputes all 3D coordinates from the current
// vocabulary. Results for an outdated snapshot are discarded, never
// merged.
func (s *SceneServiceImpl) RefreshLayout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshLayoutLocked()
}

// View returns the current render snapshot.
func (s *SceneServiceImpl) View() domain.SceneView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *SceneServiceImpl) addWordLocked(raw string) (string, error) {
	display, lookup, err := words.Normalize(raw)
	if err != nil {
		return "", err
	}
	if _, err := s.store.Get(lookup); err == nil {
		return "", domain.ErrDuplicateWord
	}
	vector, err := s.provider.Embed(lookup)
	if err != nil {
		return "", err
	}
	if _, err := s.store.Append(display, vector); err != nil {
		return "", err
	}
	return display, nil
}

func (s *SceneServiceImpl) refreshLayoutLocked() error {
	snap := s.store.Snapshot()
	coords, err := s.projector.Project(snap.Vectors())
	if err != nil {
		if !errors.Is(err, domain.ErrTooFewVectors) {
			s.logger.Warn("layout recompute failed", "words", len(snap.Entries), "error", err)
		}
		return err
	}
	// last write wins: drop results computed against a stale snapshot
	if snap.Revision != s.store.Revision() {
		s.logger.Debug("discarding stale layout", "revision", snap.Revision, "current", s.store.Revision())
		return nil
	}
	s.coords = coords
	s.layoutRev = snap.Revision
	return nil
}

func (s *SceneServiceImpl) viewLocked() domain.SceneView {
	snap := s.store.Snapshot()
	state := s.selection.State()
	view := domain.SceneView{
		ActiveWord:  state.ActiveWord,
		Highlighted: state.Neighbors,
		Provider:    s.provider.Name(),
		Revision:    snap.Revision,
	}
	ready := s.layoutRev == snap.Revision && len(s.coords) == len(snap.Entries) && len(snap.Entries) > 0
	view.LayoutReady = ready
	view.Words = make([]domain.PlacedWord, len(snap.Entries))
	for i, e := range snap.Entries {
		placed := domain.PlacedWord{Word: e.Word}
		if ready {
			placed.Coordinate = s.coords[i]
		}
		view.Words[i] = placed
	}
	return view
}
