package normalize

import (
	"errors"
	"fmt"

	"github.com/ta7mid/vc-research-experiments/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("normalize: graph is nil")

// Normalize converts g into its canonical form: self-loops removed,
// duplicate unordered pairs collapsed, surviving nodes relabeled 0..N-1 in
// first-seen order, isolated nodes dropped.
// Complexity: O(order + size)
func Normalize(g *core.Graph) (*core.Canonical, error) {
	c, _, err := Mapping(g)

	return c, err
}

// Mapping is Normalize plus the label table: labels[i] holds the original
// identifier of canonical node i. The LCC stage persists this table so
// solver output can be traced back to the raw dataset.
// Complexity: O(order + size)
func Mapping(g *core.Graph) (*core.Canonical, []string, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}

	ids := make(map[string]int, g.Order())
	labels := make([]string, 0, g.Order())
	assign := func(raw string) int {
		id, ok := ids[raw]
		if !ok {
			id = len(labels)
			ids[raw] = id
			labels = append(labels, raw)
		}

		return id
	}

	rawEdges := g.Edges()
	edges := make([][2]int, 0, len(rawEdges))
	dedup := make(map[[2]int]struct{}, len(rawEdges))
	for _, e := range rawEdges {
		if e.U == e.V {
			continue // self-loop
		}
		u, v := assign(e.U), assign(e.V)
		if v < u {
			u, v = v, u
		}
		pair := [2]int{u, v}
		if _, dup := dedup[pair]; dup {
			continue
		}
		dedup[pair] = struct{}{}
		edges = append(edges, pair)
	}

	c, err := core.NewCanonical(len(labels), edges)
	if err != nil {
		// unreachable: assignment above cannot violate the invariants
		return nil, nil, fmt.Errorf("normalize: building canonical graph: %w", err)
	}

	return c, labels, nil
}
