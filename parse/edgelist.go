package parse

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/ta7mid/vc-research-experiments/core"
)

// ParseEdgeList parses text as a plain edge-list graph description.
//
// Both whitespace runs and commas separate fields, and both '#' and '%'
// introduce comments, simultaneously — repositories mix all of these
// within a single file. Only the first two fields of a line are used, so
// weights and other trailing metadata are ignored. Lines left with fewer
// than two fields after comment stripping are skipped.
//
// Returns ErrFormat when not a single edge can be extracted; per the
// loader contract such input is not a recognizable edge list.
// Complexity: O(bytes of input)
func ParseEdgeList(text string) (*core.Graph, error) {
	g := core.NewGraph()
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for sc.Scan() {
		u, v, ok := splitEdgeLine(sc.Text())
		if !ok {
			continue
		}
		if err := g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("parse: edge %q %q: %w", u, v, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse: scanning edge list: %w", err)
	}
	if g.Size() == 0 {
		return nil, fmt.Errorf("%w: no edges found", ErrFormat)
	}

	return g, nil
}

// splitEdgeLine extracts the two endpoint fields of one edge-list line,
// reporting ok=false for comment-only, blank, or single-field lines.
func splitEdgeLine(line string) (u, v string, ok bool) {
	// strip the comment suffix, whichever marker comes first
	if i := strings.IndexAny(line, "#%"); i >= 0 {
		line = line[:i]
	}
	// commas count as delimiters alongside whitespace
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\r' || r == '\v' || r == '\f'
	})
	if len(fields) < 2 {
		return "", "", false
	}

	return fields[0], fields[1], true
}
