// Package parse loads raw graph descriptions into a core.Graph.
//
// What
//
//   - Reads the two formats graph datasets from public repositories ship
//     in: plain edge lists and Matrix Market coordinate files.
//   - Edge lists: one edge per line; whitespace runs and commas both act as
//     delimiters; '#' and '%' start a comment anywhere in a line; tokens
//     beyond the first two (weights, timestamps, metadata) are ignored.
//   - Matrix Market: sparse "coordinate" adjacency matrices; the numeric
//     field (real, double, complex, integer) is treated as pattern and the
//     values discarded, since only the edge structure matters here.
//   - Input is addressed through an explicit tagged Source (a file path or
//     inline text), never by sniffing argument types at run time.
//
// Why
//
//	Downloaded datasets are messy: directed duplicate listings, self-loops,
//	weight columns, mixed comment markers. The loader's one job is to get
//	every listed edge into memory untouched; cleaning them up is the
//	normalizer's job.
//
// Format detection
//
//	With FormatAuto the format is guessed from the filename extension
//	(".edges", ".mtx"). Whichever parser runs first, the other is tried as
//	a fallback before giving up, because repositories routinely mislabel
//	one format as the other.
//
// Errors
//
//	ErrEmptyPath   - an empty path or inline text was supplied.
//	ErrFormat      - the input is not recognizable as any supported format.
//	ErrNoGraphFile - a directory scan found no candidate graph file.
//	IO failures wrap the underlying *fs.PathError.
package parse
