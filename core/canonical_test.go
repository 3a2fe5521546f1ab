package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ta7mid/vc-research-experiments/core"
)

// TestNewCanonical_Errors verifies that every construction invariant is
// enforced.
func TestNewCanonical_Errors(t *testing.T) {
	cases := []struct {
		name  string
		order int
		edges [][2]int
		err   error
	}{
		{"NegativeEndpoint", 3, [][2]int{{-1, 2}}, core.ErrEndpointOutOfRange},
		{"EndpointTooLarge", 3, [][2]int{{0, 3}}, core.ErrEndpointOutOfRange},
		{"SelfLoop", 3, [][2]int{{1, 1}}, core.ErrSelfLoop},
		{"DuplicatePair", 3, [][2]int{{0, 1}, {1, 0}}, core.ErrDuplicateEdge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := core.NewCanonical(tc.order, tc.edges); !errors.Is(err, tc.err) {
				t.Errorf("NewCanonical(%d, %v) error = %v; want %v", tc.order, tc.edges, err, tc.err)
			}
		})
	}
}

// TestCanonical_Empty covers the zero-order graph.
func TestCanonical_Empty(t *testing.T) {
	c, err := core.NewCanonical(0, nil)
	if err != nil {
		t.Fatalf("NewCanonical(0, nil): %v", err)
	}
	if c.Order() != 0 || c.Size() != 0 {
		t.Errorf("order=%d size=%d; want 0, 0", c.Order(), c.Size())
	}
	if got := c.Edges(); len(got) != 0 {
		t.Errorf("Edges = %v; want empty", got)
	}
}

// TestCanonical_EdgeOrder checks that Edges is sorted ascending by source
// then target regardless of insertion order and orientation.
func TestCanonical_EdgeOrder(t *testing.T) {
	c, err := core.NewCanonical(4, [][2]int{{3, 2}, {1, 0}, {0, 2}})
	if err != nil {
		t.Fatalf("NewCanonical: %v", err)
	}
	want := [][2]int{{0, 1}, {0, 2}, {2, 3}}
	if got := c.Edges(); !reflect.DeepEqual(got, want) {
		t.Errorf("Edges = %v; want %v", got, want)
	}
}

// TestCanonical_Queries covers Has, Degree, and Neighbors, including
// out-of-range identifiers.
func TestCanonical_Queries(t *testing.T) {
	c, err := core.NewCanonical(4, [][2]int{{0, 1}, {0, 2}, {2, 3}})
	if err != nil {
		t.Fatalf("NewCanonical: %v", err)
	}

	if !c.Has(1, 0) {
		t.Error("Has(1, 0) = false; want true")
	}
	if c.Has(1, 3) {
		t.Error("Has(1, 3) = true; want false")
	}
	if c.Has(-1, 0) || c.Has(4, 0) {
		t.Error("out-of-range Has must report false")
	}

	if d := c.Degree(0); d != 2 {
		t.Errorf("Degree(0) = %d; want 2", d)
	}
	if d := c.Degree(99); d != 0 {
		t.Errorf("Degree(99) = %d; want 0", d)
	}

	if want := []int{1, 2}; !reflect.DeepEqual(c.Neighbors(0), want) {
		t.Errorf("Neighbors(0) = %v; want %v", c.Neighbors(0), want)
	}
	if got := c.Neighbors(-1); got != nil {
		t.Errorf("Neighbors(-1) = %v; want nil", got)
	}
}
