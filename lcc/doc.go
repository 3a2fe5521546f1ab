// Package lcc derives the largest-connected-component variant of a
// prepared dataset.
//
// Several solver experiments assume connected input. For a disconnected
// graph <dir>, Extract creates a sibling dataset <dir>_lcc containing the
// largest component relabeled to contiguous identifiers, its recomputed
// properties, and a node_mapping.txt tracing each new identifier back to
// the original one ("new old" per line, ascending).
//
// Already-connected datasets and datasets whose _lcc sibling exists are
// skipped without error; the operation is idempotent over a data root.
// When the largest component ties in size, the component containing the
// smallest node identifier wins, keeping output deterministic.
package lcc
