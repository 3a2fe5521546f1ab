// Command addlcc derives the largest-connected-component dataset for a
// prepared graph directory (or, with -all, for every dataset under a
// root). Connected graphs and already-derived directories are skipped.
package main

import (
	"flag"
	"fmt"

	"github.com/ta7mid/vc-research-experiments/internal/cli"
	"github.com/ta7mid/vc-research-experiments/internal/logutil"
	"github.com/ta7mid/vc-research-experiments/lcc"
)

func main() {
	all := flag.Bool("all", false, "treat the argument as a data root and process every dataset")
	flag.Parse()

	path, err := cli.Argument(flag.Args())
	if err != nil {
		cli.Fatal(err)
	}

	log := logutil.Must()
	defer log.Sync()

	if *all {
		if err := lcc.ExtractAll(path, lcc.WithLogger(log)); err != nil {
			cli.Fatal(err)
		}

		return
	}

	lccDir, created, err := lcc.Extract(path, lcc.WithLogger(log))
	if err != nil {
		cli.Fatal(err)
	}
	if created {
		fmt.Println(lccDir)
	}
}
