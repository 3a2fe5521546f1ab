package lcc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/ta7mid/vc-research-experiments/bfs"
	"github.com/ta7mid/vc-research-experiments/core"
	"github.com/ta7mid/vc-research-experiments/dataset"
	"github.com/ta7mid/vc-research-experiments/props"
)

// Suffix distinguishes a derived LCC dataset from its source.
const Suffix = "_lcc"

// Option configures extraction.
type Option func(*config)

type config struct {
	log *zap.Logger
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

func newConfig(opts []Option) config {
	c := config{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// Extract creates the <dir>_lcc dataset for a disconnected prepared
// dataset. It reports created=false, without error, when the source is
// already connected or the derived dataset already exists.
// Complexity: O(order + size) of the source graph.
func Extract(dir string, opts ...Option) (lccDir string, created bool, err error) {
	cfg := newConfig(opts)
	if dir == "" {
		return "", false, dataset.ErrEmptyPath
	}
	dir = filepath.Clean(dir)

	p, err := dataset.ReadProperties(filepath.Join(dir, dataset.PropertiesFile))
	if err != nil {
		return "", false, fmt.Errorf("lcc: %w", err)
	}
	if p.Connected {
		cfg.log.Info("already connected, skipping", zap.String("dir", dir))
		return "", false, nil
	}

	lccDir = dir + Suffix
	if _, statErr := os.Stat(lccDir); statErr == nil {
		cfg.log.Info("derived dataset exists, skipping", zap.String("dir", lccDir))
		return "", false, nil
	} else if !errors.Is(statErr, os.ErrNotExist) {
		return "", false, fmt.Errorf("lcc: inspecting %q: %w", lccDir, statErr)
	}

	g, err := dataset.ReadEdges(filepath.Join(dir, dataset.EdgesFile))
	if err != nil {
		return "", false, fmt.Errorf("lcc: %w", err)
	}

	comp := largestComponent(g)
	sub, err := relabelComponent(g, comp)
	if err != nil {
		return "", false, err
	}
	subProps, err := props.Compute(sub)
	if err != nil {
		return "", false, fmt.Errorf("lcc: %w", err)
	}

	// The mapping is staged with the other two files so that an existing
	// <dir>_lcc is always a complete dataset; the exists-skip above
	// depends on that.
	mapping := dataset.WithExtraFile(dataset.MappingFile, func(w io.Writer) error {
		return writeMapping(w, comp)
	})
	if err = dataset.Write(lccDir, sub, subProps, mapping); err != nil {
		return "", false, fmt.Errorf("lcc: %w", err)
	}
	cfg.log.Info("extracted largest component",
		zap.String("dir", lccDir),
		zap.Int("order", subProps.Order),
		zap.Int("size", subProps.Size))

	return lccDir, true, nil
}

// ExtractAll runs Extract over every subdirectory of root, skipping
// derived _lcc datasets. One failing graph does not stop the others; all
// failures are reported joined into the returned error.
func ExtractAll(root string, opts ...Option) error {
	cfg := newConfig(opts)
	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("lcc: reading %q: %w", root, err)
	}

	var errs []error
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, Suffix) {
			continue // derived dataset
		}
		if _, _, err = Extract(filepath.Join(root, name), opts...); err != nil {
			cfg.log.Error("extraction failed", zap.String("graph", name), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	return errors.Join(errs...)
}

// largestComponent returns the sorted node set of the largest component,
// breaking size ties toward the component holding the smallest node.
func largestComponent(c *core.Canonical) []int {
	var best []int
	for _, comp := range bfs.Components(c) {
		if len(comp) > len(best) {
			best = comp
		}
	}

	return best
}

// relabelComponent induces the subgraph on comp (sorted ascending) and
// relabels its nodes 0..len(comp)-1 in that order.
func relabelComponent(c *core.Canonical, comp []int) (*core.Canonical, error) {
	remap := make(map[int]int, len(comp))
	for i, old := range comp {
		remap[old] = i
	}

	var edges [][2]int
	for _, e := range c.Edges() {
		u, uok := remap[e[0]]
		v, vok := remap[e[1]]
		if uok && vok {
			edges = append(edges, [2]int{u, v})
		}
	}
	sub, err := core.NewCanonical(len(comp), edges)
	if err != nil {
		// unreachable: an induced subgraph of a canonical graph is canonical
		return nil, fmt.Errorf("lcc: relabeling component: %w", err)
	}

	return sub, nil
}

// writeMapping streams "new old" pairs, ascending by new identifier.
func writeMapping(w io.Writer, comp []int) error {
	sorted := make([]int, len(comp))
	copy(sorted, comp)
	sort.Ints(sorted)

	bw := bufio.NewWriter(w)
	for newID, oldID := range sorted {
		if _, err := fmt.Fprintf(bw, "%d %d\n", newID, oldID); err != nil {
			return err
		}
	}

	return bw.Flush()
}
