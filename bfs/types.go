// Package bfs: tunable options and error definitions for traversal over a
// core.Canonical graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrCanonicalNil is returned if a nil graph pointer is passed.
	ErrCanonicalNil = errors.New("bfs: canonical graph is nil")

	// ErrStartOutOfRange is returned when the start node is not in
	// 0..order-1.
	ErrStartOutOfRange = errors.New("bfs: start node out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Result holds the outcome of one traversal.
type Result struct {
	// Order is the visit sequence.
	Order []int

	// Depth[v] is the distance in edges from the start to v, or -1 when
	// v was not reached.
	Depth []int

	// Parent[v] is v's predecessor in the BFS tree, or -1 for the root
	// and for unreached nodes.
	Parent []int
}

// Visited reports whether v was reached by the traversal.
func (r *Result) Visited(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}

// Option configures BFS behavior via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when
// BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background context,
// no depth limit, no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  func(int, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a hook invoked at every visited node.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil OnVisit hook", ErrOptionViolation)
			return
		}
		o.OnVisit = fn
	}
}

// WithMaxDepth limits exploration to d edges from the start; d == 0 means
// no limit and negative values are rejected.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: negative MaxDepth %d", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}
