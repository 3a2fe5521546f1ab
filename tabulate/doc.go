// Package tabulate turns prepared datasets and solver results into
// human- and machine-readable tables.
//
// What: it walks a data root (one subdirectory per graph, each holding
// properties.yaml) and a results root (per-graph <solver>_cardinality.txt
// files), joins them, and renders the rows in one of three formats:
// plain aligned columns, tab-separated values, or a Markdown table.
//
// Why: eyeballing dozens of per-graph files does not scale; one table
// per experiment does.
//
// Determinism: rows are sorted by graph name and solver columns by
// solver name, so identical inputs render identical tables.
package tabulate
