package fallback

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedIsDeterministic(t *testing.T) {
	e := NewEmbedder()
	a, err := e.Embed("tree")
	require.NoError(t, err)
	b, err := e.Embed("tree")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEmbedDimension(t *testing.T) {
	e := NewEmbedder()
	vec, err := e.Embed("cat")
	require.NoError(t, err)
	assert.Len(t, vec, Dimension)
	assert.Equal(t, Dimension, e.Dimension())
}

func TestEmbedFormula(t *testing.T) {
	e := NewEmbedder()
	vec, err := e.Embed("cat")
	require.NoError(t, err)

	// charValues for "cat" = [3, 1, 20], cycled over the components
	charValues := []float64{3, 1, 20}
	for _, i := range []int{0, 1, 2, 3, 50, 99} {
		cv := charValues[i%3]
		want := math.Sin(cv*(float64(i)/100)) * math.Cos(cv)
		assert.InDelta(t, want, vec[i], 1e-15, "component %d", i)
	}
}

func TestEmbedCaseInsensitive(t *testing.T) {
	e := NewEmbedder()
	a, err := e.Embed("Cat")
	require.NoError(t, err)
	b, err := e.Embed("cat")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEmbedDistinctWordsDiffer(t *testing.T) {
	e := NewEmbedder()
	a, err := e.Embed("cat")
	require.NoError(t, err)
	b, err := e.Embed("dog")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
