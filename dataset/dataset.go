package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ta7mid/vc-research-experiments/core"
	"github.com/ta7mid/vc-research-experiments/props"
)

// Fixed names of the two files constituting a prepared dataset directory.
const (
	// EdgesFile is the canonical edge-list filename.
	EdgesFile = "graph.edges"

	// PropertiesFile is the properties record filename.
	PropertiesFile = "properties.yaml"

	// MappingFile records "new old" label pairs when a dataset is derived
	// from another one (see the lcc package).
	MappingFile = "node_mapping.txt"
)

// Sentinel errors for dataset IO.
var (
	// ErrEmptyPath indicates an empty directory or file path.
	ErrEmptyPath = errors.New("dataset: empty path")

	// ErrMalformedEdges indicates a graph.edges file violating the
	// canonical format.
	ErrMalformedEdges = errors.New("dataset: malformed canonical edge list")
)

// WriteOption configures Write.
type WriteOption func(*writeConfig)

type writeConfig struct {
	extras []extraFile
}

type extraFile struct {
	name  string
	write func(io.Writer) error
}

// WithExtraFile stages one additional file next to graph.edges and
// properties.yaml. It is installed by the same rename as the other two,
// so a dataset directory can never exist with some of its files missing.
func WithExtraFile(name string, write func(io.Writer) error) WriteOption {
	return func(cfg *writeConfig) {
		cfg.extras = append(cfg.extras, extraFile{name: name, write: write})
	}
}

// Write replaces the contents of dir with the canonical files for c and
// p, plus any files supplied via WithExtraFile.
//
// DESTRUCTIVE: every pre-existing entry of dir is deleted, with no
// recovery path. The replacement is all-or-nothing — content is staged
// into a temporary sibling, the old directory is moved aside, and the
// stage is renamed into place (the old directory is restored if that
// rename fails), so an IO failure leaves either the old directory or
// the new one, never a mixture and never neither.
// Complexity: O(size) plus filesystem work.
func Write(dir string, c *core.Canonical, p props.Properties, opts ...WriteOption) error {
	if dir == "" {
		return ErrEmptyPath
	}
	var cfg writeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	dir = filepath.Clean(dir)
	parent := filepath.Dir(dir)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return fmt.Errorf("dataset: creating %q: %w", parent, err)
	}

	stage, err := os.MkdirTemp(parent, ".dataset-")
	if err != nil {
		return fmt.Errorf("dataset: staging directory: %w", err)
	}
	defer os.RemoveAll(stage) // no-op after a successful rename

	if err = writeEdgesFile(filepath.Join(stage, EdgesFile), c); err != nil {
		return err
	}
	if err = writePropertiesFile(filepath.Join(stage, PropertiesFile), p); err != nil {
		return err
	}
	for _, ex := range cfg.extras {
		if err = writeExtraFile(filepath.Join(stage, ex.name), ex.write); err != nil {
			return err
		}
	}

	backup := stage + ".old"
	hadOld := true
	if err = os.Rename(dir, backup); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("dataset: clearing %q: %w", dir, err)
		}
		hadOld = false
	}
	if err = os.Rename(stage, dir); err != nil {
		if hadOld {
			_ = os.Rename(backup, dir) // put the old dataset back
		}
		return fmt.Errorf("dataset: installing %q: %w", dir, err)
	}
	if hadOld {
		if err = os.RemoveAll(backup); err != nil {
			return fmt.Errorf("dataset: removing old content %q: %w", backup, err)
		}
	}

	return nil
}

// WriteEdges streams the canonical edge list of c to w, one "u v" line per
// edge, ascending by source then target.
func WriteEdges(w io.Writer, c *core.Canonical) error {
	bw := bufio.NewWriter(w)
	for _, e := range c.Edges() {
		if _, err := fmt.Fprintf(bw, "%d %d\n", e[0], e[1]); err != nil {
			return fmt.Errorf("dataset: writing edge list: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("dataset: writing edge list: %w", err)
	}

	return nil
}

// writeEdgesFile writes the canonical edge list to path.
func writeEdgesFile(path string, c *core.Canonical) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: creating %q: %w", path, err)
	}
	if err = WriteEdges(f, c); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("dataset: closing %q: %w", path, err)
	}

	return nil
}

// writeExtraFile materializes one WithExtraFile entry inside the stage.
func writeExtraFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: creating %q: %w", path, err)
	}
	if err = write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("dataset: writing %q: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("dataset: closing %q: %w", path, err)
	}

	return nil
}

// writePropertiesFile writes the YAML properties record to path.
func writePropertiesFile(path string, p props.Properties) error {
	raw, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("dataset: encoding properties: %w", err)
	}
	if err = os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("dataset: writing %q: %w", path, err)
	}

	return nil
}

// ReadEdges parses a canonical edge-list file back into a Canonical. The
// graph's order is inferred as one past the largest identifier present.
//
// Returns ErrMalformedEdges for any line that is not exactly two
// non-negative integers, and for self-loops or duplicates (which a
// canonical file must never contain).
func ReadEdges(path string) (*core.Canonical, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: opening %q: %w", path, err)
	}
	defer f.Close()

	var edges [][2]int
	order := 0
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %q", ErrMalformedEdges, line)
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil || u < 0 {
			return nil, fmt.Errorf("%w: source %q", ErrMalformedEdges, fields[0])
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil || v < 0 {
			return nil, fmt.Errorf("%w: target %q", ErrMalformedEdges, fields[1])
		}
		if u >= order {
			order = u + 1
		}
		if v >= order {
			order = v + 1
		}
		edges = append(edges, [2]int{u, v})
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: reading %q: %w", path, err)
	}

	c, err := core.NewCanonical(order, edges)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEdges, err)
	}

	return c, nil
}

// ReadProperties parses a properties.yaml file.
func ReadProperties(path string) (props.Properties, error) {
	var p props.Properties
	if path == "" {
		return p, ErrEmptyPath
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("dataset: reading %q: %w", path, err)
	}
	if err = yaml.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("dataset: decoding %q: %w", path, err)
	}

	return p, nil
}
