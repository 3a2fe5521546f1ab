// Command parsegraph reads one raw graph file and prints its edge list
// to stdout, one "u v" pair per line. With -relabel the graph is first
// normalized, so the output is a canonical edge list.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/ta7mid/vc-research-experiments/dataset"
	"github.com/ta7mid/vc-research-experiments/internal/cli"
	"github.com/ta7mid/vc-research-experiments/normalize"
	"github.com/ta7mid/vc-research-experiments/parse"
)

func main() {
	formatName := flag.String("format", "auto", "input format: auto, edges or mtx")
	relabel := flag.Bool("relabel", false, "normalize to canonical integer labels")
	flag.Parse()

	path, err := cli.Argument(flag.Args())
	if err != nil {
		cli.Fatal(err)
	}
	format, err := parse.ParseFormat(*formatName)
	if err != nil {
		cli.Fatal(err)
	}

	g, err := parse.Graph(parse.File(path), format)
	if err != nil {
		cli.Fatal(err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if *relabel {
		c, err := normalize.Normalize(g)
		if err != nil {
			cli.Fatal(err)
		}
		if err := dataset.WriteEdges(out, c); err != nil {
			cli.Fatal(err)
		}

		return
	}

	for _, e := range g.Edges() {
		fmt.Fprintf(out, "%s %s\n", e.U, e.V)
	}
}
