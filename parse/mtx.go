package parse

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/ta7mid/vc-research-experiments/core"
)

// mtxHeaderPrefix opens every Matrix Market file.
// See https://math.nist.gov/MatrixMarket/formats.html#MMformat
const mtxHeaderPrefix = "%%matrixmarket"

// ParseMatrixMarket parses text as a Matrix Market adjacency matrix and
// returns the graph it describes.
//
// Only the sparse "coordinate" layout is supported; the dense "array"
// layout has no meaningful interpretation as an edge list and is rejected.
// The numeric field (real, double, complex, integer) is treated as
// pattern: entry values carry edge weights, which this toolchain discards.
// Indices are 1-based in the file and become 0-based node labels.
//
// Returns ErrFormat for anything that is not coordinate Matrix Market
// data.
// Complexity: O(bytes of input)
func ParseMatrixMarket(text string) (*core.Graph, error) {
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	if !sc.Scan() {
		return nil, fmt.Errorf("%w: empty Matrix Market input", ErrFormat)
	}
	if err := parseMTXHeader(sc.Text()); err != nil {
		return nil, err
	}

	// locate the size line, skipping comments and blanks
	var sawSize bool
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		if _, _, err := parseMTXSize(line); err != nil {
			return nil, err
		}
		sawSize = true

		break
	}
	if !sawSize {
		return nil, fmt.Errorf("%w: Matrix Market size line missing", ErrFormat)
	}

	g := core.NewGraph()
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: malformed entry %q", ErrFormat, line)
		}
		i, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: row index %q", ErrFormat, fields[0])
		}
		j, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: column index %q", ErrFormat, fields[1])
		}
		if i < 1 || j < 1 {
			return nil, fmt.Errorf("%w: non-positive index in entry %q", ErrFormat, line)
		}
		// 1-based file indices become 0-based node labels
		if err = g.AddEdge(strconv.Itoa(i-1), strconv.Itoa(j-1)); err != nil {
			return nil, fmt.Errorf("parse: mtx entry %q: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse: scanning Matrix Market data: %w", err)
	}
	if g.Size() == 0 {
		return nil, fmt.Errorf("%w: Matrix Market data lists no entries", ErrFormat)
	}

	return g, nil
}

// parseMTXHeader validates the "%%MatrixMarket matrix coordinate ..."
// banner line.
func parseMTXHeader(line string) error {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(line)))
	if len(fields) < 3 || fields[0] != mtxHeaderPrefix {
		return fmt.Errorf("%w: missing Matrix Market header", ErrFormat)
	}
	if fields[1] != "matrix" {
		return fmt.Errorf("%w: unsupported Matrix Market object %q", ErrFormat, fields[1])
	}
	if fields[2] == "array" {
		return fmt.Errorf("%w: dense Matrix Market arrays are not supported", ErrFormat)
	}
	if fields[2] != "coordinate" {
		return fmt.Errorf("%w: unsupported Matrix Market layout %q", ErrFormat, fields[2])
	}

	return nil
}

// parseMTXSize parses the "rows cols nnz" size line.
func parseMTXSize(line string) (rows, cols int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, 0, fmt.Errorf("%w: malformed size line %q", ErrFormat, line)
	}
	for k, f := range fields {
		n, convErr := strconv.Atoi(f)
		if convErr != nil || n < 0 {
			return 0, 0, fmt.Errorf("%w: malformed size line %q", ErrFormat, line)
		}
		switch k {
		case 0:
			rows = n
		case 1:
			cols = n
		}
	}

	return rows, cols, nil
}
