package selection

import (
	"wordspace/internal/domain"
	"wordspace/internal/similarity"
)

// NeighborCount is how many nearest neighbors get highlighted for the
// active word.
const NeighborCount = 5

// Controller tracks which word is active and which store indices are
// its highlighted neighbors. Re-selecting the active word toggles back
// to idle.
type Controller struct {
	store domain.VectorStore
	state domain.SelectionState
}

// NewController creates an idle controller over the store.
func NewController(store domain.VectorStore) *Controller {
	return &Controller{store: store}
}

// Select activates word with freshly ranked neighbors, or clears the
// selection when word is already active.
func (c *Controller) Select(word string) (domain.SelectionState, error) {
	entry, err := c.store.Get(word)
	if err != nil {
		return c.state, err
	}
	if c.state.ActiveWord == entry.Word {
		return c.Clear(), nil
	}
	return c.activate(entry), nil
}

// WordAdded activates a freshly appended word so its relationships are
// immediately visible.
func (c *Controller) WordAdded(word string) (domain.SelectionState, error) {
	entry, err := c.store.Get(word)
	if err != nil {
		return c.state, err
	}
	return c.activate(entry), nil
}

// Clear forces the idle state from anywhere.
func (c *Controller) Clear() domain.SelectionState {
	c.state = domain.SelectionState{}
	return c.state
}

// State returns a copy of the current selection.
func (c *Controller) State() domain.SelectionState {
	neighbors := make([]int, len(c.state.Neighbors))
	copy(neighbors, c.state.Neighbors)
	return domain.SelectionState{ActiveWord: c.state.ActiveWord, Neighbors: neighbors}
}

func (c *Controller) activate(entry domain.Entry) domain.SelectionState {
	neighbors := similarity.Nearest(entry.Vector, c.store.Snapshot(), entry.Index, NeighborCount)
	c.state = domain.SelectionState{ActiveWord: entry.Word, Neighbors: neighbors}
	return c.State()
}
