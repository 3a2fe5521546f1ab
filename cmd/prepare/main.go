// Command prepare normalizes the raw graph inside a directory in
// place: the directory's contents are replaced by graph.edges and
// properties.yaml. Prints the directory, so addlcc can chain after it.
package main

import (
	"flag"
	"fmt"

	"github.com/ta7mid/vc-research-experiments/internal/cli"
	"github.com/ta7mid/vc-research-experiments/internal/logutil"
	"github.com/ta7mid/vc-research-experiments/prepare"
)

func main() {
	flag.Parse()

	dir, err := cli.Argument(flag.Args())
	if err != nil {
		cli.Fatal(err)
	}

	log := logutil.Must()
	defer log.Sync()

	if _, err := prepare.Run(dir, prepare.WithLogger(log)); err != nil {
		cli.Fatal(err)
	}
	fmt.Println(dir)
}
