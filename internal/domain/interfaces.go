package domain

// Embedder converts a single word into a numeric vector representation.
type Embedder interface {
	Name() string
	Dimension() int
	Embed(word string) ([]float64, error)
}

// Projector maps high-dimensional vectors to one 3D coordinate per
// vector, aligned by position.
type Projector interface {
	Project(vectors [][]float64) ([]Coordinate, error)
}

// VectorStore is the ordered, append-only vocabulary owning words,
// vectors and their stable insertion indices.
type VectorStore interface {
	Append(word string, vector []float64) (int, error)
	Get(word string) (Entry, error)
	Snapshot() Snapshot
	Len() int
	Dimension() int
	Revision() uint64
}

// SceneService defines the operations exposed by the application core.
type SceneService interface {
	AddWord(raw string) (SceneView, error)
	Select(raw string) (SceneView, error)
	ClearSelection() SceneView
	View() SceneView
}
