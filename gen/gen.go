package gen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/ta7mid/vc-research-experiments/core"
)

// Sentinel errors for parameter validation.
var (
	// ErrTooFewVertices indicates an n below the constructor's minimum.
	ErrTooFewVertices = errors.New("gen: parameter too small")

	// ErrInvalidProbability indicates a p outside the closed interval [0,1].
	ErrInvalidProbability = errors.New("gen: probability out of range")
)

// Minimum vertex counts per family.
const (
	minPathVertices     = 2
	minCycleVertices    = 3
	minCompleteVertices = 1
	minStarVertices     = 2
	minSparseVertices   = 1
)

// Path builds the path graph P_n: edges (i-1, i) for i = 1..n-1.
// Requires n ≥ 2.
// Complexity: O(n)
func Path(n int) (*core.Canonical, error) {
	if n < minPathVertices {
		return nil, fmt.Errorf("gen: Path: n=%d < min=%d: %w", n, minPathVertices, ErrTooFewVertices)
	}
	edges := make([][2]int, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, [2]int{i - 1, i})
	}

	return core.NewCanonical(n, edges)
}

// Cycle builds the cycle graph C_n: the path P_n plus the closing edge
// (0, n-1). Requires n ≥ 3, the smallest simple cycle.
// Complexity: O(n)
func Cycle(n int) (*core.Canonical, error) {
	if n < minCycleVertices {
		return nil, fmt.Errorf("gen: Cycle: n=%d < min=%d: %w", n, minCycleVertices, ErrTooFewVertices)
	}
	edges := make([][2]int, 0, n)
	for i := 1; i < n; i++ {
		edges = append(edges, [2]int{i - 1, i})
	}
	edges = append(edges, [2]int{0, n - 1})

	return core.NewCanonical(n, edges)
}

// Complete builds the complete graph K_n: every unordered pair joined.
// Requires n ≥ 1; K_1 is a single isolated vertex.
// Complexity: O(n²)
func Complete(n int) (*core.Canonical, error) {
	if n < minCompleteVertices {
		return nil, fmt.Errorf("gen: Complete: n=%d < min=%d: %w", n, minCompleteVertices, ErrTooFewVertices)
	}
	edges := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}

	return core.NewCanonical(n, edges)
}

// Star builds the star graph S_n: vertex 0 joined to 1..n-1. Requires
// n ≥ 2. Its minimum vertex cover is the single hub, which makes stars
// handy solver sanity checks.
// Complexity: O(n)
func Star(n int) (*core.Canonical, error) {
	if n < minStarVertices {
		return nil, fmt.Errorf("gen: Star: n=%d < min=%d: %w", n, minStarVertices, ErrTooFewVertices)
	}
	edges := make([][2]int, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, [2]int{0, i})
	}

	return core.NewCanonical(n, edges)
}

// RandomSparse samples an Erdős–Rényi style graph G(n, p): each
// unordered pair {i, j} is included independently with probability p.
// Trials run in fixed pair order from a source seeded with seed, so the
// result is reproducible. Requires n ≥ 1 and 0 ≤ p ≤ 1.
// Complexity: O(n²)
func RandomSparse(n int, p float64, seed int64) (*core.Canonical, error) {
	if n < minSparseVertices {
		return nil, fmt.Errorf("gen: RandomSparse: n=%d < min=%d: %w", n, minSparseVertices, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("gen: RandomSparse: p=%v not in [0,1]: %w", p, ErrInvalidProbability)
	}

	rng := rand.New(rand.NewSource(seed))
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	return core.NewCanonical(n, edges)
}
