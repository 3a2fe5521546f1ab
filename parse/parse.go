package parse

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ta7mid/vc-research-experiments/core"
)

// Graph parses the source as the given format and returns the loaded graph.
//
// With FormatAuto the format is guessed from the filename extension; inline
// text defaults to the edge-list format. Whichever parser is chosen first,
// the other is tried on failure before the whole load is rejected with
// ErrFormat, because datasets in the wild frequently carry the wrong
// extension.
// Complexity: O(bytes of input)
func Graph(src Source, format Format) (*core.Graph, error) {
	text, ext, err := src.read()
	if err != nil {
		return nil, err
	}

	if format == FormatAuto {
		switch ext {
		case "mtx":
			format = FormatMatrixMarket
		case "edges", "":
			// inline text has no extension; edge list is the common case
			format = FormatEdgeList
		default:
			return nil, fmt.Errorf("%w: unknown extension %q", ErrFormat, ext)
		}
	}

	switch format {
	case FormatMatrixMarket:
		g, mtxErr := ParseMatrixMarket(text)
		if mtxErr == nil {
			return g, nil
		}
		if g, err = ParseEdgeList(text); err != nil {
			return nil, fmt.Errorf("%w: not Matrix Market (%v) and not an edge list", ErrFormat, mtxErr)
		}

		return g, nil
	case FormatEdgeList:
		g, elErr := ParseEdgeList(text)
		if elErr == nil {
			return g, nil
		}
		if g, err = ParseMatrixMarket(text); err != nil {
			return nil, fmt.Errorf("%w: not an edge list (%v) and not Matrix Market", ErrFormat, elErr)
		}

		return g, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrFormat, format)
	}
}

// Dir scans dir for the first file with a recognized graph extension
// (".mtx" or ".edges", in lexical filename order), parses it, and returns
// the graph together with the chosen filename. Other files in the
// directory are ignored.
//
// Returns ErrNoGraphFile when no candidate exists, or the underlying IO
// error when dir cannot be read.
func Dir(dir string) (*core.Graph, string, error) {
	if dir == "" {
		return nil, "", ErrEmptyPath
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, "", fmt.Errorf("parse: reading directory %q: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		switch filepath.Ext(name) {
		case ".mtx", ".edges":
		default:
			continue
		}
		g, err := Graph(File(filepath.Join(dir, name)), FormatAuto)
		if err != nil {
			return nil, "", fmt.Errorf("parse: file %q: %w", name, err)
		}

		return g, name, nil
	}

	return nil, "", fmt.Errorf("%w: %q", ErrNoGraphFile, dir)
}
