package solver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ta7mid/vc-research-experiments/dataset"
)

// Outcome records one solver's answer on one graph.
type Outcome struct {
	// Graph is the dataset directory name.
	Graph string

	// Solver is the Spec.Name that produced the answer.
	Solver string

	// Cardinality is the reported cover size.
	Cardinality int

	// Valid reports whether the cover was verified to cover every edge.
	Valid bool
}

// HarnessOption configures a Harness.
type HarnessOption func(*Harness)

// WithJobs bounds how many graphs are processed concurrently; graphs are
// fully independent, so the default is 1 (sequential) and any bound is
// safe. Non-positive values are treated as 1.
func WithJobs(n int) HarnessOption {
	return func(h *Harness) {
		if n > 0 {
			h.jobs = n
		}
	}
}

// WithAbortOnError makes the first failing graph abort the whole run
// instead of the default report-and-continue policy.
func WithAbortOnError() HarnessOption {
	return func(h *Harness) { h.keepGoing = false }
}

// WithHarnessLogger attaches a logger; the default discards everything.
func WithHarnessLogger(log *zap.Logger) HarnessOption {
	return func(h *Harness) {
		if log != nil {
			h.log = log
		}
	}
}

// Harness compares every configured solver over every prepared dataset
// under a data root.
//
// Failure policy, explicit by design: with the default report-and-
// continue, one graph's failure is logged, recorded in the returned
// error, and does not stop other graphs; WithAbortOnError cancels the
// remaining work at the first failure. Either way no failure is silently
// swallowed.
type Harness struct {
	cfg       Config
	log       *zap.Logger
	jobs      int
	keepGoing bool
}

// NewHarness validates cfg and builds a Harness.
func NewHarness(cfg Config, opts ...HarnessOption) (*Harness, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	h := &Harness{cfg: cfg, log: zap.NewNop(), jobs: 1, keepGoing: true}
	for _, opt := range opts {
		opt(h)
	}

	return h, nil
}

// Run processes every dataset directory under dataRoot (any directory
// containing a graph.edges file) and writes, per graph and solver,
// <resultsRoot>/<graph>/<solver>_cardinality.txt and
// <solver>_cover.txt. Outcomes are returned sorted by graph then solver.
//
// The returned error joins all per-graph failures (or holds the first
// one under WithAbortOnError); the outcomes of successful graphs are
// valid either way.
func (h *Harness) Run(ctx context.Context, dataRoot, resultsRoot string) ([]Outcome, error) {
	graphs, err := listDatasets(dataRoot)
	if err != nil {
		return nil, err
	}

	var (
		mu       sync.Mutex
		outcomes []Outcome
		failures []error
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(h.jobs)

	for _, name := range graphs {
		name := name
		g.Go(func() error {
			outs, graphErr := h.runGraph(ctx, dataRoot, resultsRoot, name)

			mu.Lock()
			defer mu.Unlock()
			outcomes = append(outcomes, outs...)
			if graphErr != nil {
				h.log.Error("graph failed",
					zap.String("graph", name), zap.Error(graphErr))
				failures = append(failures, fmt.Errorf("%s: %w", name, graphErr))
				if !h.keepGoing {
					return graphErr // cancels the group
				}
			}

			return nil
		})
	}
	groupErr := g.Wait()

	sort.Slice(outcomes, func(i, j int) bool {
		if outcomes[i].Graph != outcomes[j].Graph {
			return outcomes[i].Graph < outcomes[j].Graph
		}

		return outcomes[i].Solver < outcomes[j].Solver
	})

	if !h.keepGoing && groupErr != nil {
		return outcomes, groupErr
	}

	return outcomes, errors.Join(failures...)
}

// runGraph runs every solver on one dataset. The first solver failure
// aborts processing for that graph, per the collaborator contract.
func (h *Harness) runGraph(ctx context.Context, dataRoot, resultsRoot, name string) ([]Outcome, error) {
	c, err := dataset.ReadEdges(filepath.Join(dataRoot, name, dataset.EdgesFile))
	if err != nil {
		return nil, err
	}

	resultDir := filepath.Join(resultsRoot, name)
	if err = os.MkdirAll(resultDir, 0o755); err != nil {
		return nil, fmt.Errorf("solver: creating %q: %w", resultDir, err)
	}

	outs := make([]Outcome, 0, len(h.cfg.Solvers))
	for _, spec := range h.cfg.Solvers {
		cover, solveErr := Solve(ctx, spec, c)
		if solveErr != nil {
			return outs, solveErr
		}
		valid := VerifyCover(c, cover.Nodes)
		h.log.Info("solver finished",
			zap.String("graph", name),
			zap.String("solver", spec.Name),
			zap.Int("cardinality", cover.Cardinality),
			zap.Bool("valid", valid))

		if err = writeOutcome(resultDir, spec.Name, cover); err != nil {
			return outs, err
		}
		outs = append(outs, Outcome{
			Graph:       name,
			Solver:      spec.Name,
			Cardinality: cover.Cardinality,
			Valid:       valid,
		})
	}

	return outs, nil
}

// writeOutcome persists one solver answer under the graph's result
// directory.
func writeOutcome(dir, solverName string, cover Cover) error {
	card := []byte(strconv.Itoa(cover.Cardinality) + "\n")
	cardPath := filepath.Join(dir, solverName+"_cardinality.txt")
	if err := os.WriteFile(cardPath, card, 0o644); err != nil {
		return fmt.Errorf("solver: writing %q: %w", cardPath, err)
	}

	tokens := make([]string, len(cover.Nodes))
	for i, v := range cover.Nodes {
		tokens[i] = strconv.Itoa(v)
	}
	coverPath := filepath.Join(dir, solverName+"_cover.txt")
	if err := os.WriteFile(coverPath, []byte(strings.Join(tokens, " ")+"\n"), 0o644); err != nil {
		return fmt.Errorf("solver: writing %q: %w", coverPath, err)
	}

	return nil
}

// listDatasets returns the sorted names of subdirectories of root that
// contain a canonical edge-list file.
func listDatasets(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("solver: reading data root %q: %w", root, err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, statErr := os.Stat(filepath.Join(root, e.Name(), dataset.EdgesFile)); statErr == nil {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	return names, nil
}
