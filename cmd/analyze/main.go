// Command analyze parses a raw graph, normalizes it, and prints its
// properties as YAML. The argument may be a graph file or a directory
// holding one.
package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ta7mid/vc-research-experiments/core"
	"github.com/ta7mid/vc-research-experiments/internal/cli"
	"github.com/ta7mid/vc-research-experiments/normalize"
	"github.com/ta7mid/vc-research-experiments/parse"
	"github.com/ta7mid/vc-research-experiments/props"
)

func main() {
	formatName := flag.String("format", "auto", "input format: auto, edges or mtx")
	flag.Parse()

	path, err := cli.Argument(flag.Args())
	if err != nil {
		cli.Fatal(err)
	}
	format, err := parse.ParseFormat(*formatName)
	if err != nil {
		cli.Fatal(err)
	}

	var g *core.Graph
	if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
		g, _, err = parse.Dir(path)
	} else {
		g, err = parse.Graph(parse.File(path), format)
	}
	if err != nil {
		cli.Fatal(err)
	}

	c, err := normalize.Normalize(g)
	if err != nil {
		cli.Fatal(err)
	}
	p, err := props.Compute(c)
	if err != nil {
		cli.Fatal(err)
	}

	out, err := yaml.Marshal(p)
	if err != nil {
		cli.Fatal(err)
	}
	fmt.Print(string(out))
}
