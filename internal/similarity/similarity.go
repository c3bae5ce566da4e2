package similarity

import (
	"math"
	"sort"

	"wordspace/internal/domain"
)

// CosineDistance returns 1 - cos(a, b): 0 for identical direction, 2
// for opposite. A zero-norm operand yields +Inf so degenerate vectors
// sort after every real candidate instead of poisoning the ranking.
func CosineDistance(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return math.Inf(1)
	}
	return 1 - dot/(math.Sqrt(na)*math.Sqrt(nb))
}

// Degenerate reports whether a distance came from a zero-norm operand.
func Degenerate(d float64) bool { return math.IsInf(d, 1) }

// Nearest ranks every snapshot entry by ascending cosine distance from
// query and returns the first k indices. Ties break by ascending index
// so results are deterministic. excludeIndex skips the query word's
// own entry; pass -1 to rank everything.
//
// The ranking is recomputed over the full snapshot on every call. At
// the vocabulary sizes this system targets, a rebuildable spatial
// index would cost more than the O(n·d) scan it replaces.
func Nearest(query []float64, snap domain.Snapshot, excludeIndex, k int) []int {
	if k <= 0 {
		return nil
	}
	type scored struct {
		index    int
		distance float64
	}
	candidates := make([]scored, 0, len(snap.Entries))
	for _, e := range snap.Entries {
		if e.Index == excludeIndex {
			continue
		}
		candidates = append(candidates, scored{e.Index, CosineDistance(query, e.Vector)})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].index < candidates[j].index
	})
	if k > len(candidates) {
		k = len(candidates)
	}
	out := make([]int, k)
	for i := 0; i < k; i++ {
		out[i] = candidates[i].index
	}
	return out
}
