// Package dataset reads and writes the canonical on-disk form of a
// prepared graph: a directory holding exactly graph.edges and
// properties.yaml.
//
// What
//
//   - graph.edges: one edge per line, "<source> <target>" with canonical
//     integer identifiers, space-separated, newline-terminated, ascending
//     by source then target. No header, no comments, no self-loops, no
//     duplicates — each unordered pair appears exactly once.
//   - properties.yaml: the six-field props.Properties record (order, size,
//     max_degree, avg_degree, density, connected), encoded with yaml.v3.
//
// Destructive writes
//
//	Write REPLACES the target directory: every pre-existing entry is
//	deleted. There is no recovery path; callers own the decision to point
//	it at a directory. The new content is staged into a temporary sibling
//	directory and renamed into place, so a failed write never leaves a
//	partial or corrupt dataset behind — the operation is all-or-nothing.
//
// The readers exist for the stages that consume prepared datasets again:
// largest-component extraction, the solver comparison harness, and result
// tabulation.
package dataset
