package bfs

import (
	"fmt"
	"sort"

	"github.com/ta7mid/vc-research-experiments/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Canonical
	opts    Options
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on c starting from start, applying any
// number of functional Options.
// Returns ErrCanonicalNil or ErrStartOutOfRange for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
// Complexity: O(order + size)
func BFS(c *core.Canonical, start int, opts ...Option) (*Result, error) {
	if c == nil {
		return nil, ErrCanonicalNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start < 0 || start >= c.Order() {
		return nil, fmt.Errorf("%w: %d (order %d)", ErrStartOutOfRange, start, c.Order())
	}

	n := c.Order()
	w := &walker{
		graph:   c,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := range w.res.Depth {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	// Seed queue with the start node (no parent)
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// enqueue marks v visited at depth d, records its parent, and adds it to
// the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.visited[v] = true
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for qi := 0; qi < len(w.queue); qi++ {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[qi]
		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
		}

		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.graph.Neighbors(item.v) {
			if !w.visited[nbr] {
				w.enqueue(nbr, nextDepth, item.v)
			}
		}
	}

	return nil
}

// Components returns the connected components of c. Each component is
// sorted ascending, and components are ordered by their smallest member;
// node i belongs to the component first discovered from the lowest
// unvisited node, so output is deterministic.
// The empty graph yields no components.
// Complexity: O(order + size)
func Components(c *core.Canonical) [][]int {
	if c == nil {
		return nil
	}
	seen := make([]bool, c.Order())
	var comps [][]int
	for v := 0; v < c.Order(); v++ {
		if seen[v] {
			continue
		}
		// BFS to collect the component containing v
		queue := []int{v}
		seen[v] = true
		var comp []int
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, nbr := range c.Neighbors(u) {
				if !seen[nbr] {
					seen[nbr] = true
					queue = append(queue, nbr)
				}
			}
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps
}
