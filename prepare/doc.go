// Package prepare drives the single-pass dataset pipeline:
// load → normalize → compute properties → write.
//
// Run processes one extracted dataset directory in place. It locates the
// first recognizable graph file, builds the canonical graph, and then
// REPLACES the directory's entire contents with graph.edges and
// properties.yaml — the raw files it was built from included. The write is
// all-or-nothing, so a failing pipeline leaves the directory as it was.
//
// Obtain chains the whole acquisition path for one dataset URL:
// download the archive, extract it, prepare the extracted directory.
//
// Each run is independent and stateless; nothing is shared across
// directories, so callers may prepare many datasets concurrently.
package prepare
