package tabulate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ta7mid/vc-research-experiments/dataset"
	"github.com/ta7mid/vc-research-experiments/props"
)

// ErrNoRows indicates a root under which no tabulable graph was found.
var ErrNoRows = errors.New("tabulate: no rows collected")

// Row pairs one prepared graph with its stored properties.
type Row struct {
	Name  string
	Props props.Properties
}

// ResultRow joins one graph's basic properties with every solver
// cardinality reported for it.
type ResultRow struct {
	Name  string
	Order int
	Size  int

	// Cardinality maps solver name to reported cover size. A solver
	// absent from a graph's result directory is simply missing here.
	Cardinality map[string]int
}

// CollectData gathers one Row per subdirectory of root that holds a
// properties file, sorted by graph name.
func CollectData(root string) ([]Row, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("tabulate: reading data root %q: %w", root, err)
	}

	var rows []Row
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		p, readErr := dataset.ReadProperties(filepath.Join(root, e.Name(), dataset.PropertiesFile))
		if readErr != nil {
			if errors.Is(readErr, os.ErrNotExist) {
				continue
			}

			return nil, readErr
		}
		rows = append(rows, Row{Name: e.Name(), Props: p})
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: under %q", ErrNoRows, root)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })

	return rows, nil
}

// CollectResults joins the datasets under dataDir with the per-solver
// cardinality files under resultsDir. Graphs without a result directory
// are skipped; a malformed cardinality file is an error.
func CollectResults(dataDir, resultsDir string) ([]ResultRow, error) {
	data, err := CollectData(dataDir)
	if err != nil {
		return nil, err
	}

	var rows []ResultRow
	for _, d := range data {
		cards, readErr := readCardinalities(filepath.Join(resultsDir, d.Name))
		if readErr != nil {
			return nil, readErr
		}
		if cards == nil {
			continue
		}
		rows = append(rows, ResultRow{
			Name:        d.Name,
			Order:       d.Props.Order,
			Size:        d.Props.Size,
			Cardinality: cards,
		})
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no results under %q", ErrNoRows, resultsDir)
	}

	return rows, nil
}

// Solvers returns the sorted union of solver names across rows; these
// become the table's solver columns.
func Solvers(rows []ResultRow) []string {
	seen := make(map[string]struct{})
	for _, r := range rows {
		for name := range r.Cardinality {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// readCardinalities parses every <solver>_cardinality.txt under dir.
// A missing dir yields (nil, nil).
func readCardinalities(dir string) (map[string]int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("tabulate: reading results %q: %w", dir, err)
	}

	cards := make(map[string]int)
	for _, e := range entries {
		solverName, ok := strings.CutSuffix(e.Name(), "_cardinality.txt")
		if !ok || e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		raw, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("tabulate: reading %q: %w", path, readErr)
		}
		card, convErr := strconv.Atoi(strings.TrimSpace(string(raw)))
		if convErr != nil || card < 0 {
			return nil, fmt.Errorf("tabulate: %q: bad cardinality %q", path, strings.TrimSpace(string(raw)))
		}
		cards[solverName] = card
	}
	if len(cards) == 0 {
		return nil, nil
	}

	return cards, nil
}
