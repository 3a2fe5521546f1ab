// Command gengraph writes a synthetic dataset: a classic graph family
// or an Erdős–Rényi sample, stored in the same canonical layout the
// prepare stage produces. Prints the dataset directory.
package main

import (
	"flag"
	"fmt"

	"github.com/ta7mid/vc-research-experiments/core"
	"github.com/ta7mid/vc-research-experiments/dataset"
	"github.com/ta7mid/vc-research-experiments/gen"
	"github.com/ta7mid/vc-research-experiments/internal/cli"
	"github.com/ta7mid/vc-research-experiments/props"
)

func main() {
	family := flag.String("family", "path", "graph family: path, cycle, complete, star or sparse")
	n := flag.Int("n", 10, "number of vertices")
	p := flag.Float64("p", 0.1, "edge probability (sparse only)")
	seed := flag.Int64("seed", 1, "random seed (sparse only)")
	flag.Parse()

	dir, err := cli.Argument(flag.Args())
	if err != nil {
		cli.Fatal(err)
	}

	var c *core.Canonical
	switch *family {
	case "path":
		c, err = gen.Path(*n)
	case "cycle":
		c, err = gen.Cycle(*n)
	case "complete":
		c, err = gen.Complete(*n)
	case "star":
		c, err = gen.Star(*n)
	case "sparse":
		c, err = gen.RandomSparse(*n, *p, *seed)
	default:
		err = fmt.Errorf("unknown family %q", *family)
	}
	if err != nil {
		cli.Fatal(err)
	}

	pr, err := props.Compute(c)
	if err != nil {
		cli.Fatal(err)
	}
	if err := dataset.Write(dir, c, pr); err != nil {
		cli.Fatal(err)
	}
	fmt.Println(dir)
}
