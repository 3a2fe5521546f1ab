package parse_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ta7mid/vc-research-experiments/core"
	"github.com/ta7mid/vc-research-experiments/parse"
)

// TestParseEdgeList_Delimiters verifies that whitespace and commas both
// separate fields, in any mixture.
func TestParseEdgeList_Delimiters(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []core.Edge
	}{
		{"Spaces", "a b\nb c\n", []core.Edge{{U: "a", V: "b"}, {U: "b", V: "c"}}},
		{"Commas", "a,b\nb,c\n", []core.Edge{{U: "a", V: "b"}, {U: "b", V: "c"}}},
		{"Tabs", "a\tb\n", []core.Edge{{U: "a", V: "b"}}},
		{"MixedRuns", "a ,\t, b\n", []core.Edge{{U: "a", V: "b"}}},
		{"TrailingWeight", "a b 3.5\nb c 1 extra\n", []core.Edge{{U: "a", V: "b"}, {U: "b", V: "c"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := parse.ParseEdgeList(tc.text)
			if err != nil {
				t.Fatalf("ParseEdgeList(%q): %v", tc.text, err)
			}
			if got := g.Edges(); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Edges = %v; want %v", got, tc.want)
			}
		})
	}
}

// TestParseEdgeList_Comments checks both comment markers, full-line and
// trailing, plus blank and short lines.
func TestParseEdgeList_Comments(t *testing.T) {
	text := "# header comment\n" +
		"% another header\n" +
		"\n" +
		"a b # trailing hash\n" +
		"b c % trailing percent\n" +
		"lonely\n" +
		"c d\n"
	g, err := parse.ParseEdgeList(text)
	if err != nil {
		t.Fatalf("ParseEdgeList: %v", err)
	}
	want := []core.Edge{{U: "a", V: "b"}, {U: "b", V: "c"}, {U: "c", V: "d"}}
	if got := g.Edges(); !reflect.DeepEqual(got, want) {
		t.Errorf("Edges = %v; want %v", got, want)
	}
}

// TestParseEdgeList_DuplicatesAndLoops confirms that duplicates collapse
// and self-loops pass through to the normalizer untouched.
func TestParseEdgeList_DuplicatesAndLoops(t *testing.T) {
	g, err := parse.ParseEdgeList("a b\nb a\na a\n")
	if err != nil {
		t.Fatalf("ParseEdgeList: %v", err)
	}
	if g.Size() != 2 {
		t.Errorf("Size = %d; want 2 (one pair, one loop)", g.Size())
	}
	if !g.HasEdge("a", "a") {
		t.Error("self-loop a-a should survive loading")
	}
}

// TestParseEdgeList_NoEdges verifies that edge-free input is rejected as
// unrecognizable rather than returning an empty graph.
func TestParseEdgeList_NoEdges(t *testing.T) {
	for _, text := range []string{"", "# only comments\n% nothing else\n", "one-field\n"} {
		if _, err := parse.ParseEdgeList(text); !errors.Is(err, parse.ErrFormat) {
			t.Errorf("ParseEdgeList(%q) error = %v; want ErrFormat", text, err)
		}
	}
}
