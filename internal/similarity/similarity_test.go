package similarity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordspace/internal/domain"
)

func snapshotOf(vectors ...[]float64) domain.Snapshot {
	entries := make([]domain.Entry, len(vectors))
	for i, v := range vectors {
		entries[i] = domain.Entry{Word: string(rune('a' + i)), Vector: v, Index: i}
	}
	return domain.Snapshot{Entries: entries}
}

func TestCosineDistanceReflexive(t *testing.T) {
	a := []float64{0.3, -1.2, 4.5}
	assert.InDelta(t, 0, CosineDistance(a, a), 1e-12)
}

func TestCosineDistanceSymmetric(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{-2, 0.5, 1}
	assert.Equal(t, CosineDistance(a, b), CosineDistance(b, a))
}

func TestCosineDistanceOpposite(t *testing.T) {
	a := []float64{1, 0}
	b := []float64{-1, 0}
	assert.InDelta(t, 2, CosineDistance(a, b), 1e-12)
}

func TestCosineDistanceZeroNorm(t *testing.T) {
	d := CosineDistance([]float64{0, 0}, []float64{1, 0})
	assert.True(t, math.IsInf(d, 1))
	assert.True(t, Degenerate(d))
	assert.False(t, Degenerate(0.5))
}

func TestNearestRanksByDistance(t *testing.T) {
	// dog is closer to cat's direction than fish
	snap := snapshotOf(
		[]float64{1, 0, 0},   // cat
		[]float64{0.9, 0.1, 0}, // dog
		[]float64{0, 1, 0},   // fish
	)
	got := Nearest([]float64{1, 0, 0}, snap, 0, 2)
	assert.Equal(t, []int{1, 2}, got)
}

func TestNearestExcludesSelf(t *testing.T) {
	snap := snapshotOf([]float64{1, 0}, []float64{0, 1}, []float64{1, 1})
	for _, idx := range Nearest([]float64{1, 0}, snap, 0, 10) {
		assert.NotEqual(t, 0, idx)
	}
}

func TestNearestCapsAtK(t *testing.T) {
	snap := snapshotOf([]float64{1, 0}, []float64{0, 1}, []float64{1, 1}, []float64{2, 1})
	assert.Len(t, Nearest([]float64{1, 0}, snap, -1, 2), 2)
	assert.Len(t, Nearest([]float64{1, 0}, snap, -1, 99), 4)
	assert.Empty(t, Nearest([]float64{1, 0}, snap, -1, 0))
}

func TestNearestBreaksTiesByIndex(t *testing.T) {
	// identical vectors tie at distance 0 and must come back in index order
	snap := snapshotOf([]float64{1, 0}, []float64{1, 0}, []float64{1, 0})
	got := Nearest([]float64{1, 0}, snap, -1, 3)
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestNearestDegenerateSortsLast(t *testing.T) {
	snap := snapshotOf([]float64{0, 0}, []float64{0.5, 0.5}, []float64{1, 0})
	got := Nearest([]float64{1, 0}, snap, -1, 3)
	require.Len(t, got, 3)
	assert.Equal(t, 0, got[2], "zero-norm vector must rank last")
}

func TestNearestOrderIsNonDecreasing(t *testing.T) {
	snap := snapshotOf([]float64{1, 0}, []float64{0, 1}, []float64{1, 1}, []float64{-1, 0.2})
	query := []float64{0.7, 0.3}
	got := Nearest(query, snap, -1, 4)
	require.Len(t, got, 4)
	for i := 1; i < len(got); i++ {
		prev := CosineDistance(query, snap.Entries[got[i-1]].Vector)
		cur := CosineDistance(query, snap.Entries[got[i]].Vector)
		assert.LessOrEqual(t, prev, cur)
	}
}
