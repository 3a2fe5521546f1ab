// Package vcexperiments is a toolchain for minimum-vertex-cover
// experiments on real-world graphs: it downloads published graph
// datasets, normalizes them into one canonical edge-list format,
// computes their structural properties, runs external vertex-cover
// solvers over them, and tabulates the results side by side.
//
// The work is organized as a pipeline of small packages, each usable on
// its own:
//
//	parse/     — raw graph readers (whitespace/comma edge lists, Matrix Market)
//	core/      — raw string-labeled graphs and canonical integer graphs
//	normalize/ — raw graph → canonical graph (dedup, loop removal, relabeling)
//	props/     — order, size, degrees, density, connectivity
//	bfs/       — traversal and connected components over canonical graphs
//	dataset/   — the on-disk dataset layout (graph.edges, properties.yaml)
//	fetch/     — HTTP download and ZIP extraction
//	prepare/   — download → extract → normalize → write, end to end
//	lcc/       — largest-connected-component datasets
//	gen/       — synthetic graphs (paths, cycles, stars, Erdős–Rényi)
//	solver/    — external solver execution, verification, comparison harness
//	tabulate/  — result tables (aligned, TSV, Markdown)
//
// The matching commands under cmd/ expose each stage for shell
// pipelines; each prints its primary output path to stdout and accepts
// its argument from stdin, so stages chain:
//
//	download https://example.org/karate.zip | extract | prepare
//	compare -config solvers.toml data && tabulate -results results data
package vcexperiments
