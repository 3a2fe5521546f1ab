package gen_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ta7mid/vc-research-experiments/core"
	"github.com/ta7mid/vc-research-experiments/gen"
	"github.com/ta7mid/vc-research-experiments/props"
)

func TestFamilies(t *testing.T) {
	cases := []struct {
		name      string
		build     func() (*core.Canonical, error)
		wantOrder int
		wantEdges [][2]int
	}{
		{
			name:      "path P4",
			build:     func() (*core.Canonical, error) { return gen.Path(4) },
			wantOrder: 4,
			wantEdges: [][2]int{{0, 1}, {1, 2}, {2, 3}},
		},
		{
			name:      "cycle C3",
			build:     func() (*core.Canonical, error) { return gen.Cycle(3) },
			wantOrder: 3,
			wantEdges: [][2]int{{0, 1}, {0, 2}, {1, 2}},
		},
		{
			name:      "complete K4",
			build:     func() (*core.Canonical, error) { return gen.Complete(4) },
			wantOrder: 4,
			wantEdges: [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}},
		},
		{
			name:      "complete K1",
			build:     func() (*core.Canonical, error) { return gen.Complete(1) },
			wantOrder: 1,
			wantEdges: [][2]int{},
		},
		{
			name:      "star S5",
			build:     func() (*core.Canonical, error) { return gen.Star(5) },
			wantOrder: 5,
			wantEdges: [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := tc.build()
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if c.Order() != tc.wantOrder {
				t.Errorf("Order() = %d, want %d", c.Order(), tc.wantOrder)
			}
			if diff := cmp.Diff(tc.wantEdges, c.Edges()); diff != "" {
				t.Errorf("Edges() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidation(t *testing.T) {
	cases := []struct {
		name  string
		build func() (*core.Canonical, error)
		want  error
	}{
		{"path of one", func() (*core.Canonical, error) { return gen.Path(1) }, gen.ErrTooFewVertices},
		{"two-cycle", func() (*core.Canonical, error) { return gen.Cycle(2) }, gen.ErrTooFewVertices},
		{"empty complete", func() (*core.Canonical, error) { return gen.Complete(0) }, gen.ErrTooFewVertices},
		{"hub-only star", func() (*core.Canonical, error) { return gen.Star(1) }, gen.ErrTooFewVertices},
		{"negative p", func() (*core.Canonical, error) { return gen.RandomSparse(5, -0.1, 1) }, gen.ErrInvalidProbability},
		{"p above one", func() (*core.Canonical, error) { return gen.RandomSparse(5, 1.5, 1) }, gen.ErrInvalidProbability},
		{"zero vertices sparse", func() (*core.Canonical, error) { return gen.RandomSparse(0, 0.5, 1) }, gen.ErrTooFewVertices},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.build(); !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestRandomSparse(t *testing.T) {
	t.Run("deterministic for a fixed seed", func(t *testing.T) {
		a, err := gen.RandomSparse(30, 0.2, 42)
		if err != nil {
			t.Fatal(err)
		}
		b, err := gen.RandomSparse(30, 0.2, 42)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(a.Edges(), b.Edges()); diff != "" {
			t.Errorf("same seed produced different graphs:\n%s", diff)
		}
	})

	t.Run("extreme probabilities", func(t *testing.T) {
		empty, err := gen.RandomSparse(10, 0, 7)
		if err != nil {
			t.Fatal(err)
		}
		if empty.Size() != 0 {
			t.Errorf("p=0 produced %d edges", empty.Size())
		}

		full, err := gen.RandomSparse(10, 1, 7)
		if err != nil {
			t.Fatal(err)
		}
		if want := 10 * 9 / 2; full.Size() != want {
			t.Errorf("p=1 produced %d edges, want %d", full.Size(), want)
		}
	})
}

func TestStarCoverProperties(t *testing.T) {
	c, err := gen.Star(6)
	if err != nil {
		t.Fatal(err)
	}
	p, err := props.Compute(c)
	if err != nil {
		t.Fatal(err)
	}
	if !p.Connected {
		t.Error("stars are connected")
	}
	if p.MaxDegree != 5 {
		t.Errorf("MaxDegree = %d, want 5", p.MaxDegree)
	}
}
