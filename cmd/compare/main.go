// Command compare runs every solver from a TOML configuration over
// every prepared dataset under a data root, writing per-graph result
// files. Prints the results root, so tabulate can chain after it.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/ta7mid/vc-research-experiments/internal/cli"
	"github.com/ta7mid/vc-research-experiments/internal/logutil"
	"github.com/ta7mid/vc-research-experiments/solver"
)

func main() {
	configPath := flag.String("config", "solvers.toml", "TOML solver configuration")
	resultsDir := flag.String("results", "results", "directory for per-graph result files")
	jobs := flag.Int("jobs", 1, "graphs processed concurrently")
	keepGoing := flag.Bool("keep-going", true, "continue past a failing graph")
	flag.Parse()

	dataRoot, err := cli.Argument(flag.Args())
	if err != nil {
		cli.Fatal(err)
	}

	cfg, err := solver.LoadConfig(*configPath)
	if err != nil {
		cli.Fatal(err)
	}

	log := logutil.Must()
	defer log.Sync()

	opts := []solver.HarnessOption{
		solver.WithJobs(*jobs),
		solver.WithHarnessLogger(log),
	}
	if !*keepGoing {
		opts = append(opts, solver.WithAbortOnError())
	}
	h, err := solver.NewHarness(cfg, opts...)
	if err != nil {
		cli.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	outcomes, err := h.Run(ctx, dataRoot, *resultsDir)
	for _, o := range outcomes {
		if !o.Valid {
			fmt.Fprintf(os.Stderr, "warning: %s/%s reported an invalid cover\n", o.Graph, o.Solver)
		}
	}
	if err != nil {
		cli.Fatal(err)
	}
	fmt.Println(*resultsDir)
}
