// Package normalize converts a raw core.Graph into its canonical form.
//
// What
//
//   - Strips self-loops.
//   - Collapses duplicate unordered pairs (direction and weights were
//     already discarded by the loader).
//   - Relabels the surviving nodes with contiguous integers 0..N-1,
//     assigned in the first-seen order of the raw graph so identical input
//     always yields identical output.
//   - Drops nodes left without a single surviving edge; isolated nodes do
//     not appear in canonical output.
//
// Why
//
//	The external solver executables consume a strict integer edge list.
//	Everything loose about downloaded datasets — labels, loops, repeats —
//	is resolved here, once, so every downstream stage can rely on the
//	Canonical invariants instead of re-validating.
//
// Policy
//
//	A graph with no edges normalizes to the empty canonical graph:
//	order 0, size 0, and vacuously connected by convention. This is a
//	deliberate, tested policy, not a fallthrough.
//
// Idempotence
//
//	Normalizing an already-canonical graph reproduces it exactly.
//
// Complexity: O(order + size) of the input graph.
package normalize
