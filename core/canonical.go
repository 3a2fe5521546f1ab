// Package core: Canonical — the normalized, integer-labeled representation.
package core

import (
	"errors"
	"sort"
)

// Sentinel errors for canonical graph construction.
var (
	// ErrEndpointOutOfRange indicates an edge endpoint outside 0..order-1.
	ErrEndpointOutOfRange = errors.New("core: edge endpoint out of range")

	// ErrSelfLoop indicates an edge with equal endpoints.
	ErrSelfLoop = errors.New("core: self-loop in canonical graph")

	// ErrDuplicateEdge indicates the same unordered pair listed twice.
	ErrDuplicateEdge = errors.New("core: duplicate edge in canonical graph")
)

// Canonical is an undirected simple graph whose nodes are exactly the
// integers 0..Order()-1.
//
// Invariants, established at construction and never violated afterwards:
// every edge endpoint is in range, no edge has equal endpoints, and no two
// edges denote the same unordered pair. All adjacency is stored sorted
// ascending, so every traversal over a Canonical is deterministic.
type Canonical struct {
	adj  [][]int // adj[u] sorted ascending
	size int
}

// NewCanonical builds a Canonical of the given order from a list of
// unordered integer pairs, validating every invariant. The orientation of
// each input pair is irrelevant.
//
// Returns ErrEndpointOutOfRange, ErrSelfLoop, or ErrDuplicateEdge on the
// first violated invariant.
// Complexity: O(order + len(edges) log maxDeg)
func NewCanonical(order int, edges [][2]int) (*Canonical, error) {
	c := &Canonical{adj: make([][]int, order)}
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= order || v < 0 || v >= order {
			return nil, ErrEndpointOutOfRange
		}
		if u == v {
			return nil, ErrSelfLoop
		}
		if c.Has(u, v) {
			return nil, ErrDuplicateEdge
		}
		c.adj[u] = insertSorted(c.adj[u], v)
		c.adj[v] = insertSorted(c.adj[v], u)
		c.size++
	}

	return c, nil
}

// insertSorted inserts x into the ascending slice s, keeping it sorted.
func insertSorted(s []int, x int) []int {
	i := sort.SearchInts(s, x)
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = x

	return s
}

// Order returns the number of nodes.
func (c *Canonical) Order() int { return len(c.adj) }

// Size returns the number of edges.
func (c *Canonical) Size() int { return c.size }

// Has reports whether the unordered pair {u, v} is an edge.
// Out-of-range endpoints simply report false.
// Complexity: O(log deg(u))
func (c *Canonical) Has(u, v int) bool {
	if u < 0 || u >= len(c.adj) {
		return false
	}
	i := sort.SearchInts(c.adj[u], v)

	return i < len(c.adj[u]) && c.adj[u][i] == v
}

// Degree returns the number of edges incident to u, or 0 for an
// out-of-range identifier.
func (c *Canonical) Degree(u int) int {
	if u < 0 || u >= len(c.adj) {
		return 0
	}

	return len(c.adj[u])
}

// Neighbors returns the neighbors of u in ascending order.
// The returned slice is a copy and safe to retain.
func (c *Canonical) Neighbors(u int) []int {
	if u < 0 || u >= len(c.adj) {
		return nil
	}
	out := make([]int, len(c.adj[u]))
	copy(out, c.adj[u])

	return out
}

// Edges returns every edge exactly once as {u, v} with u < v, sorted
// ascending by u then v. This is the order the canonical edge-list file
// format prescribes.
// Complexity: O(order + size)
func (c *Canonical) Edges() [][2]int {
	out := make([][2]int, 0, c.size)
	for u, nbrs := range c.adj {
		for _, v := range nbrs {
			if v > u {
				out = append(out, [2]int{u, v})
			}
		}
	}

	return out
}
