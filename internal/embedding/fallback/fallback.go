package fallback

import (
	"math"
	"strings"
)

// Dimension is the fixed output size of the fallback embedding.
const Dimension = 100

// Embedder derives a vector from the word's characters alone. It needs
// no model, always succeeds, and is bit-identical across calls, so a
// session can keep working when the remote encoder never loads.
//
// Vectors are only comparable to other fallback vectors; they share no
// space with remote-encoder output.
type Embedder struct{}

// NewEmbedder creates the deterministic character-hash embedder.
func NewEmbedder() *Embedder { return &Embedder{} }

// Name returns the identifier of this embedder implementation.
func (e *Embedder) Name() string { return "fallback" }

// Dimension returns the fixed output vector length.
func (e *Embedder) Dimension() int { return Dimension }

// Embed maps each character to ord(c)-ord('a')+1 and cycles the
// resulting sequence across all components:
//
//	v[i] = sin(charValue * i/Dimension) * cos(charValue)
func (e *Embedder) Embed(word string) ([]float64, error) {
	chars := []rune(strings.ToLower(word))
	values := make([]float64, len(chars))
	for i, c := range chars {
		values[i] = float64(c-'a') + 1
	}
	vec := make([]float64, Dimension)
	if len(values) == 0 {
		return vec, nil
	}
	for i := range vec {
		cv := values[i%len(values)]
		vec[i] = math.Sin(cv*(float64(i)/Dimension)) * math.Cos(cv)
	}
	return vec, nil
}
