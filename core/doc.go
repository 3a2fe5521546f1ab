// Package core defines the two graph representations used throughout the
// toolchain: Graph, an undirected simple graph over arbitrary string node
// identifiers as parsed from raw dataset files, and Canonical, the
// normalized form over contiguous integer identifiers 0..N-1.
//
// What
//
//   - Graph: deduplicating edge set, self-loops permitted (they are removed
//     by normalization, not here), first-seen node order preserved so that
//     downstream integer relabeling is reproducible across runs.
//   - Canonical: compact adjacency over int identifiers with the invariants
//     every pipeline stage after normalization relies on — all endpoints in
//     range, no self-loops, no duplicate unordered pairs.
//
// Why
//
//	Raw datasets reference nodes by arbitrary labels ("17", "n42", "a.b"),
//	list edges in both directions, repeat them, and attach weights. The
//	solver executables, by contrast, consume a strict integer edge list.
//	Keeping the two shapes as distinct types makes it impossible to hand a
//	raw graph to code that assumes canonical invariants.
//
// Determinism
//
//	Graph.Nodes returns identifiers in first-seen order and Graph.Edges in
//	first-seen order of the earlier endpoint; Canonical.Edges is sorted
//	ascending by source then target. Every accessor is reproducible given
//	identical input.
//
// Complexity (V = order, E = size)
//
//   - AddEdge: O(1) amortized.
//   - Edges: O(V + E) for Graph, O(E) for Canonical.
//   - Degree/Neighbors/Has: O(1), O(deg), O(log deg).
package core
