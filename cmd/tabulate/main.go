// Command tabulate prints a table of the datasets under a data root:
// their stored properties by default, or properties joined with solver
// cardinalities when -results points at a compare run's output.
package main

import (
	"flag"
	"os"

	"github.com/ta7mid/vc-research-experiments/internal/cli"
	"github.com/ta7mid/vc-research-experiments/tabulate"
)

func main() {
	formatName := flag.String("f", "simple", "table format: simple, tsv or markdown")
	resultsDir := flag.String("results", "", "results directory to join solver cardinalities from")
	flag.Parse()

	dataRoot, err := cli.Argument(flag.Args())
	if err != nil {
		cli.Fatal(err)
	}
	format, err := tabulate.ParseFormat(*formatName)
	if err != nil {
		cli.Fatal(err)
	}

	if *resultsDir != "" {
		rows, err := tabulate.CollectResults(dataRoot, *resultsDir)
		if err != nil {
			cli.Fatal(err)
		}
		if err := tabulate.RenderResults(os.Stdout, rows, format); err != nil {
			cli.Fatal(err)
		}

		return
	}

	rows, err := tabulate.CollectData(dataRoot)
	if err != nil {
		cli.Fatal(err)
	}
	if err := tabulate.RenderData(os.Stdout, rows, format); err != nil {
		cli.Fatal(err)
	}
}
