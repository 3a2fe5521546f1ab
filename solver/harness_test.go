package solver_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ta7mid/vc-research-experiments/core"
	"github.com/ta7mid/vc-research-experiments/dataset"
	"github.com/ta7mid/vc-research-experiments/props"
	"github.com/ta7mid/vc-research-experiments/solver"
)

// writeDataset prepares one canonical dataset directory under root.
func writeDataset(t *testing.T, root, name string, order int, edges [][2]int) {
	t.Helper()
	c, err := core.NewCanonical(order, edges)
	require.NoError(t, err)
	p, err := props.Compute(c)
	require.NoError(t, err)
	require.NoError(t, dataset.Write(filepath.Join(root, name), c, p))
}

func TestHarnessRun(t *testing.T) {
	bins := t.TempDir()
	dataRoot := t.TempDir()
	resultsRoot := t.TempDir()

	writeDataset(t, dataRoot, "triangle", 3, [][2]int{{0, 1}, {0, 2}, {1, 2}})
	writeDataset(t, dataRoot, "path", 3, [][2]int{{0, 1}, {1, 2}})
	// Not a dataset: no graph.edges inside.
	require.NoError(t, os.MkdirAll(filepath.Join(dataRoot, "scratch"), 0o755))

	cfg := solver.Config{Solvers: []solver.Spec{
		// Covers any graph here with {0,1}.
		{Name: "pair", Path: fakeSolver(t, bins, "pair", `cat >/dev/null; echo "0, 1 => 2"`)},
		// Claims vertex 1 alone suffices; true for the path, false for
		// the triangle.
		{Name: "middle", Path: fakeSolver(t, bins, "middle", `cat >/dev/null; echo "1 => 1"`)},
	}}

	h, err := solver.NewHarness(cfg, solver.WithJobs(2))
	require.NoError(t, err)
	outcomes, err := h.Run(context.Background(), dataRoot, resultsRoot)
	require.NoError(t, err)

	require.Equal(t, []solver.Outcome{
		{Graph: "path", Solver: "middle", Cardinality: 1, Valid: true},
		{Graph: "path", Solver: "pair", Cardinality: 2, Valid: true},
		{Graph: "triangle", Solver: "middle", Cardinality: 1, Valid: false},
		{Graph: "triangle", Solver: "pair", Cardinality: 2, Valid: true},
	}, outcomes)

	card, err := os.ReadFile(filepath.Join(resultsRoot, "triangle", "pair_cardinality.txt"))
	require.NoError(t, err)
	require.Equal(t, "2\n", string(card))

	cover, err := os.ReadFile(filepath.Join(resultsRoot, "path", "pair_cover.txt"))
	require.NoError(t, err)
	require.Equal(t, "0 1\n", string(cover))

	if _, err = os.Stat(filepath.Join(resultsRoot, "scratch")); !os.IsNotExist(err) {
		t.Error("non-dataset directory must not produce results")
	}
}

func TestHarnessRun_ContinuesPastFailure(t *testing.T) {
	bins := t.TempDir()
	dataRoot := t.TempDir()
	resultsRoot := t.TempDir()

	writeDataset(t, dataRoot, "edge", 2, [][2]int{{0, 1}})
	writeDataset(t, dataRoot, "single", 1, nil)

	// Fails on the one-edge graph, answers the edgeless one.
	script := `n=$(wc -l); if [ "$n" -gt 0 ]; then exit 1; fi; echo " => 0"`
	cfg := solver.Config{Solvers: []solver.Spec{
		{Name: "flaky", Path: fakeSolver(t, bins, "flaky", script)},
	}}

	h, err := solver.NewHarness(cfg)
	require.NoError(t, err)
	outcomes, err := h.Run(context.Background(), dataRoot, resultsRoot)

	require.ErrorIs(t, err, solver.ErrSolverFailed)
	require.True(t, strings.Contains(err.Error(), "edge"))
	require.Equal(t, []solver.Outcome{
		{Graph: "single", Solver: "flaky", Cardinality: 0, Valid: true},
	}, outcomes)

	if _, statErr := os.Stat(filepath.Join(resultsRoot, "single", "flaky_cardinality.txt")); statErr != nil {
		t.Errorf("surviving graph result missing: %v", statErr)
	}
}

func TestHarnessRun_AbortOnError(t *testing.T) {
	bins := t.TempDir()
	dataRoot := t.TempDir()

	writeDataset(t, dataRoot, "edge", 2, [][2]int{{0, 1}})

	cfg := solver.Config{Solvers: []solver.Spec{
		{Name: "dying", Path: fakeSolver(t, bins, "dying", `exit 2`)},
	}}

	h, err := solver.NewHarness(cfg, solver.WithAbortOnError())
	require.NoError(t, err)
	_, err = h.Run(context.Background(), dataRoot, t.TempDir())
	require.ErrorIs(t, err, solver.ErrSolverFailed)
}

func TestNewHarness_RejectsBadConfig(t *testing.T) {
	if _, err := solver.NewHarness(solver.Config{}); err == nil {
		t.Fatal("expected error for empty config")
	}
}
