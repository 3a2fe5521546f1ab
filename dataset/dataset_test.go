package dataset_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ta7mid/vc-research-experiments/core"
	"github.com/ta7mid/vc-research-experiments/dataset"
	"github.com/ta7mid/vc-research-experiments/props"
)

// fixture returns the 4-node path graph and its properties.
func fixture(t *testing.T) (*core.Canonical, props.Properties) {
	t.Helper()
	c, err := core.NewCanonical(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)
	p, err := props.Compute(c)
	require.NoError(t, err)

	return c, p
}

// TestWrite_CreatesCanonicalFiles checks the two files and their exact
// contents.
func TestWrite_CreatesCanonicalFiles(t *testing.T) {
	c, p := fixture(t)
	dir := filepath.Join(t.TempDir(), "path4")
	require.NoError(t, dataset.Write(dir, c, p))

	raw, err := os.ReadFile(filepath.Join(dir, dataset.EdgesFile))
	require.NoError(t, err)
	require.Equal(t, "0 1\n1 2\n2 3\n", string(raw))

	got, err := dataset.ReadProperties(filepath.Join(dir, dataset.PropertiesFile))
	require.NoError(t, err)
	require.Equal(t, p, got)
}

// TestWrite_ReplacesPriorContents verifies the destructive-replace
// contract: stale files of any name, including the canonical ones, leave
// no trace.
func TestWrite_ReplacesPriorContents(t *testing.T) {
	c, p := fixture(t)
	dir := filepath.Join(t.TempDir(), "g")

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, dataset.EdgesFile), []byte("9 9\nstale\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "leftover.mtx"), []byte("junk"), 0o644))

	require.NoError(t, dataset.Write(dir, c, p))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	require.ElementsMatch(t, []string{dataset.EdgesFile, dataset.PropertiesFile}, names)

	raw, err := os.ReadFile(filepath.Join(dir, dataset.EdgesFile))
	require.NoError(t, err)
	require.NotContains(t, string(raw), "stale")
}

// TestWrite_EmptyGraph writes the empty dataset: an empty edge file and
// the conventional properties.
// TestWrite_ExtraFileInstalledWithDataset checks that WithExtraFile
// content lands in the same rename as the canonical files.
func TestWrite_ExtraFileInstalledWithDataset(t *testing.T) {
	c, p := fixture(t)
	dir := filepath.Join(t.TempDir(), "g")

	extra := dataset.WithExtraFile("notes.txt", func(w io.Writer) error {
		_, err := io.WriteString(w, "derived\n")
		return err
	})
	require.NoError(t, dataset.Write(dir, c, p, extra))

	raw, err := os.ReadFile(filepath.Join(dir, "notes.txt"))
	require.NoError(t, err)
	require.Equal(t, "derived\n", string(raw))
	require.FileExists(t, filepath.Join(dir, dataset.EdgesFile))
	require.FileExists(t, filepath.Join(dir, dataset.PropertiesFile))
}

// TestWrite_FailedExtraLeavesNothing verifies all-or-nothing when an
// extra file cannot be produced: a fresh target never appears, an
// existing target keeps its old content, and no staging directories
// linger in the parent.
func TestWrite_FailedExtraLeavesNothing(t *testing.T) {
	c, p := fixture(t)
	boom := errors.New("boom")
	failing := dataset.WithExtraFile("notes.txt", func(io.Writer) error {
		return boom
	})

	t.Run("fresh target", func(t *testing.T) {
		parent := t.TempDir()
		dir := filepath.Join(parent, "g")

		require.ErrorIs(t, dataset.Write(dir, c, p, failing), boom)
		require.NoDirExists(t, dir)
		assertNoStaging(t, parent)
	})

	t.Run("existing target kept intact", func(t *testing.T) {
		parent := t.TempDir()
		dir := filepath.Join(parent, "g")
		require.NoError(t, os.MkdirAll(dir, 0o755))
		old := filepath.Join(dir, "old.edges")
		require.NoError(t, os.WriteFile(old, []byte("1 2\n"), 0o644))

		require.ErrorIs(t, dataset.Write(dir, c, p, failing), boom)
		raw, err := os.ReadFile(old)
		require.NoError(t, err)
		require.Equal(t, "1 2\n", string(raw))
		assertNoStaging(t, parent)
	})
}

// assertNoStaging fails if parent holds anything besides the dataset
// directory itself (stage or backup leftovers start with a dot).
func assertNoStaging(t *testing.T, parent string) {
	t.Helper()
	entries, err := os.ReadDir(parent)
	require.NoError(t, err)
	for _, e := range entries {
		require.False(t, strings.HasPrefix(e.Name(), "."), "leftover %q", e.Name())
	}
}

func TestWrite_EmptyGraph(t *testing.T) {
	c, err := core.NewCanonical(0, nil)
	require.NoError(t, err)
	p, err := props.Compute(c)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, dataset.Write(dir, c, p))

	raw, err := os.ReadFile(filepath.Join(dir, dataset.EdgesFile))
	require.NoError(t, err)
	require.Empty(t, string(raw))

	got, err := dataset.ReadProperties(filepath.Join(dir, dataset.PropertiesFile))
	require.NoError(t, err)
	require.True(t, got.Connected)
	require.Zero(t, got.Order)
}

// TestWrite_EmptyPath rejects the empty target.
func TestWrite_EmptyPath(t *testing.T) {
	c, p := fixture(t)
	require.ErrorIs(t, dataset.Write("", c, p), dataset.ErrEmptyPath)
}

// TestWriteEdges_Stream checks the streaming form used by the stage CLIs.
func TestWriteEdges_Stream(t *testing.T) {
	c, _ := fixture(t)
	var sb strings.Builder
	require.NoError(t, dataset.WriteEdges(&sb, c))
	require.Equal(t, "0 1\n1 2\n2 3\n", sb.String())
}

// TestReadEdges_RoundTrip writes and re-reads a dataset.
func TestReadEdges_RoundTrip(t *testing.T) {
	c, p := fixture(t)
	dir := filepath.Join(t.TempDir(), "rt")
	require.NoError(t, dataset.Write(dir, c, p))

	got, err := dataset.ReadEdges(filepath.Join(dir, dataset.EdgesFile))
	require.NoError(t, err)
	require.Equal(t, c.Edges(), got.Edges())
	require.Equal(t, c.Order(), got.Order())
}

// TestReadEdges_Malformed rejects every deviation from the canonical
// format.
func TestReadEdges_Malformed(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"ThreeFields", "0 1 2\n"},
		{"NotAnInteger", "a b\n"},
		{"Negative", "-1 2\n"},
		{"SelfLoop", "3 3\n"},
		{"Duplicate", "0 1\n1 0\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "graph.edges")
			require.NoError(t, os.WriteFile(path, []byte(tc.text), 0o644))
			_, err := dataset.ReadEdges(path)
			require.ErrorIs(t, err, dataset.ErrMalformedEdges)
		})
	}
}

// TestReadProperties_MissingFile surfaces the IO error.
func TestReadProperties_MissingFile(t *testing.T) {
	_, err := dataset.ReadProperties(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
