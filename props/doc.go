// Package props computes the descriptive statistics attached to every
// prepared graph dataset.
//
// What
//
//	One Properties record per normalization run: order (node count), size
//	(edge count), maximum and average degree, density, and whether the
//	graph forms a single connected component. The record is computed once,
//	never mutated, and persisted as properties.yaml next to the canonical
//	edge list.
//
// Conventions
//
//   - order 0: avg_degree 0, max_degree 0, density 0, connected true
//     (vacuously — there is nothing to disconnect).
//   - order 1 cannot occur after normalization (a lone node has no edge
//     and is dropped), but density is defined as 0 for order < 2 anyway.
//
// Connectivity runs a single breadth-first traversal, so the whole
// computation is O(order + size).
package props
