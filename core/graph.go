// Package core: Graph — the raw, pre-normalization representation.
package core

import (
	"errors"
	"sort"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates an edge endpoint with an empty identifier.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")
)

// Edge is an undirected edge between two raw node identifiers.
// U carries the endpoint that was seen first during loading.
type Edge struct {
	U, V string
}

// Graph is an undirected simple graph over string node identifiers.
//
// Duplicate unordered pairs are silently collapsed and self-loops are kept
// (removing them is the normalizer's job). Node identifiers remember the
// order in which they first appeared, which makes integer relabeling
// deterministic for identical input.
type Graph struct {
	index map[string]int // node ID → first-seen position
	nodes []string       // first-seen order
	adj   map[string]map[string]struct{}
	size  int // distinct unordered pairs, self-loops included
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		index: make(map[string]int),
		adj:   make(map[string]map[string]struct{}),
	}
}

// AddEdge inserts the undirected edge {u, v}, creating the endpoints as
// needed. Re-adding an existing pair (in either orientation) is a no-op.
// Returns ErrEmptyNodeID if either identifier is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyNodeID
	}
	g.ensureNode(u)
	g.ensureNode(v)
	if _, dup := g.adj[u][v]; dup {
		return nil
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.size++

	return nil
}

// ensureNode registers id on first sight, preserving arrival order.
func (g *Graph) ensureNode(id string) {
	if _, ok := g.index[id]; ok {
		return
	}
	g.index[id] = len(g.nodes)
	g.nodes = append(g.nodes, id)
	g.adj[id] = make(map[string]struct{})
}

// HasNode reports whether id is present in the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.index[id]
	return ok
}

// HasEdge reports whether the unordered pair {u, v} is present.
func (g *Graph) HasEdge(u, v string) bool {
	_, ok := g.adj[u][v]
	return ok
}

// Order returns the number of nodes.
func (g *Graph) Order() int { return len(g.nodes) }

// Size returns the number of distinct edges, self-loops included.
func (g *Graph) Size() int { return g.size }

// Nodes returns all node identifiers in first-seen order.
// The returned slice is a copy and safe to retain.
// Complexity: O(V)
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Degree returns the number of edges incident to id, counting a self-loop
// once. Returns ErrNodeNotFound for unknown identifiers.
func (g *Graph) Degree(id string) (int, error) {
	nbrs, ok := g.adj[id]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return len(nbrs), nil
}

// NeighborIDs returns the neighbors of id in first-seen order.
// Returns ErrNodeNotFound for unknown identifiers.
// Complexity: O(deg log deg)
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	nbrs, ok := g.adj[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]string, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	g.sortByArrival(out)

	return out, nil
}

// Edges returns every distinct edge exactly once, ordered by the first-seen
// position of the earlier endpoint, then of the later one. A self-loop
// appears as {id, id}.
// Complexity: O(V + E log E)
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.size)
	for _, u := range g.nodes {
		nbrs := make([]string, 0, len(g.adj[u]))
		for v := range g.adj[u] {
			// emit each pair from its earlier endpoint only
			if g.index[v] >= g.index[u] {
				nbrs = append(nbrs, v)
			}
		}
		g.sortByArrival(nbrs)
		for _, v := range nbrs {
			out = append(out, Edge{U: u, V: v})
		}
	}

	return out
}

// sortByArrival orders identifiers by first-seen position, in place.
func (g *Graph) sortByArrival(ids []string) {
	sort.Slice(ids, func(i, j int) bool { return g.index[ids[i]] < g.index[ids[j]] })
}
