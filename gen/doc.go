// Package gen builds canonical graphs from scratch: classic families
// (path, cycle, complete, star) and an Erdős–Rényi style sparse sampler.
//
// What: each constructor returns a *core.Canonical ready for
// dataset.Write, property computation, or solver input. They exist for
// synthetic datasets and as test fixtures.
//
// Determinism: vertex indices are 0..n-1 and edges are emitted in a
// fixed order; RandomSparse draws its Bernoulli trials in pair order
// (i asc, then j asc with j > i) from a seeded source, so the same
// (n, p, seed) always yields the same graph.
//
// Errors: sentinel values only, checked with errors.Is; parameters are
// validated before any work.
package gen
