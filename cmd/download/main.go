// Command download fetches one file over HTTP and prints where it
// landed, ready to pipe into the extract stage:
//
//	download https://example.org/karate.zip | extract
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/ta7mid/vc-research-experiments/fetch"
	"github.com/ta7mid/vc-research-experiments/internal/cli"
)

func main() {
	dir := flag.String("dir", "", "destination directory (default: a fresh temp dir)")
	name := flag.String("name", "", "filename to save as (default: last URL path segment)")
	noClobber := flag.Bool("noclobber", false, "refuse to overwrite an existing file")
	flag.Parse()

	url, err := cli.Argument(flag.Args())
	if err != nil {
		cli.Fatal(err)
	}

	var opts []fetch.DownloadOption
	if *dir != "" {
		opts = append(opts, fetch.WithDestDir(*dir))
	}
	if *name != "" {
		opts = append(opts, fetch.WithFilename(*name))
	}
	if *noClobber {
		opts = append(opts, fetch.WithNoClobber())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	path, err := fetch.Download(ctx, url, opts...)
	if err != nil {
		cli.Fatal(err)
	}
	fmt.Println(path)
}
