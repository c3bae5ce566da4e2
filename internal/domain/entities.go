package domain

// Entry is a single word in the vocabulary with its embedding vector
// and its stable insertion index.
type Entry struct {
	Word   string
	Vector []float64
	Index  int
}

// Snapshot is a point-in-time copy of the vocabulary, taken for one
// projection or similarity pass. Later appends never mutate it.
type Snapshot struct {
	Entries  []Entry
	Revision uint64
}

// Vectors returns the snapshot's vectors in insertion order.
func (s Snapshot) Vectors() [][]float64 {
	vecs := make([][]float64, len(s.Entries))
	for i, e := range s.Entries {
		vecs[i] = e.Vector
	}
	return vecs
}

// Coordinate is a projected 3D position for one vocabulary entry,
// aligned with the entry's index.
type Coordinate struct {
	X, Y, Z float64
}

// SelectionState describes which word is active and which store
// indices are its highlighted neighbors, nearest first.
type SelectionState struct {
	ActiveWord string
	Neighbors  []int
}

// Idle reports whether no word is currently selected.
func (s SelectionState) Idle() bool { return s.ActiveWord == "" }

// PlacedWord pairs a vocabulary word with its projected position for
// rendering.
type PlacedWord struct {
	Word       string
	Coordinate Coordinate
}

// SceneView is the immutable render snapshot consumed by the UI.
type SceneView struct {
	Words       []PlacedWord
	ActiveWord  string
	Highlighted []int
	Provider    string
	Revision    uint64
	LayoutReady bool
}
