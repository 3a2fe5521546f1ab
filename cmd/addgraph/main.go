// Command addgraph runs the whole acquisition pipeline for one URL:
// download the archive, extract it under the data root, and prepare the
// resulting directory into a canonical dataset. Prints the dataset
// directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/ta7mid/vc-research-experiments/fetch"
	"github.com/ta7mid/vc-research-experiments/internal/cli"
	"github.com/ta7mid/vc-research-experiments/internal/logutil"
	"github.com/ta7mid/vc-research-experiments/prepare"
)

func main() {
	dataDir := flag.String("data", fetch.DefaultUnzipParent, "data root to add the graph under")
	flag.Parse()

	url, err := cli.Argument(flag.Args())
	if err != nil {
		cli.Fatal(err)
	}

	log := logutil.Must()
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dir, _, err := prepare.Obtain(ctx, url, *dataDir, prepare.WithLogger(log))
	if err != nil {
		cli.Fatal(err)
	}
	fmt.Println(dir)
}
