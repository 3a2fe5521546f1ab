package props

import (
	"errors"

	"gonum.org/v1/gonum/stat"

	"github.com/ta7mid/vc-research-experiments/bfs"
	"github.com/ta7mid/vc-research-experiments/core"
)

// ErrCanonicalNil is returned if a nil graph pointer is passed.
var ErrCanonicalNil = errors.New("props: canonical graph is nil")

// Properties is the immutable statistics record of one normalized graph.
// Field names double as the keys of the properties.yaml file.
type Properties struct {
	// Order is the node count.
	Order int `yaml:"order"`

	// Size is the edge count.
	Size int `yaml:"size"`

	// MaxDegree is the largest number of edges incident to any node.
	MaxDegree int `yaml:"max_degree"`

	// AvgDegree is 2*size/order, or 0 for the empty graph.
	AvgDegree float64 `yaml:"avg_degree"`

	// Density is size / C(order, 2) in [0,1], or 0 for order < 2.
	Density float64 `yaml:"density"`

	// Connected reports whether the graph forms a single connected
	// component; the empty graph counts as connected by convention.
	Connected bool `yaml:"connected"`
}

// Compute derives the Properties of c in a single degree pass plus one
// breadth-first traversal.
// Returns ErrCanonicalNil for a nil graph; well-formed canonical input
// cannot otherwise fail.
// Complexity: O(order + size)
func Compute(c *core.Canonical) (Properties, error) {
	if c == nil {
		return Properties{}, ErrCanonicalNil
	}

	p := Properties{
		Order:     c.Order(),
		Size:      c.Size(),
		Connected: true, // vacuously, until a traversal says otherwise
	}
	if p.Order == 0 {
		return p, nil
	}

	degrees := make([]float64, p.Order)
	for v := 0; v < p.Order; v++ {
		d := c.Degree(v)
		if d > p.MaxDegree {
			p.MaxDegree = d
		}
		degrees[v] = float64(d)
	}
	p.AvgDegree = stat.Mean(degrees, nil)

	if p.Order > 1 {
		p.Density = 2 * float64(p.Size) / (float64(p.Order) * float64(p.Order-1))
	}

	res, err := bfs.BFS(c, 0)
	if err != nil {
		// unreachable: c is non-nil and node 0 exists when order > 0
		return Properties{}, err
	}
	p.Connected = len(res.Order) == p.Order

	return p, nil
}
