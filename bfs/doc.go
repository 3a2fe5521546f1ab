// Package bfs provides breadth-first search over a core.Canonical graph,
// returning visit order, depths, parent links, and connected components.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start
//     node.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: distance (edges) from the start, indexed by node
//   - Parent: predecessor in the BFS tree (-1 for the root)
//   - Optional hooks (OnVisit), depth limiting, and context cancellation
//     via functional options.
//   - Components enumerates connected components for the LCC stage.
//
// Why
//
//	Connectivity is one of the descriptive statistics attached to every
//	prepared dataset, and the largest-connected-component stage needs the
//	full component decomposition. One traversal core serves both.
//
// Determinism
//
//	Canonical adjacency is sorted ascending and BFS enqueues neighbors in
//	that order, so the visit sequence is fully reproducible.
//
// Complexity (V = order, E = size)
//
//   - Time:   O(V + E)  (each node and edge seen at most once)
//   - Memory: O(V)      (queue, depth, parent, visited set)
package bfs
