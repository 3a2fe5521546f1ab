// Command extract unpacks a ZIP archive into a per-archive directory
// and prints that directory. The archive path may arrive on stdin, so
// it chains after the download stage.
package main

import (
	"flag"
	"fmt"

	"github.com/ta7mid/vc-research-experiments/fetch"
	"github.com/ta7mid/vc-research-experiments/internal/cli"
)

func main() {
	dir := flag.String("dir", fetch.DefaultUnzipParent, "parent directory to extract under")
	noClobber := flag.Bool("noclobber", false, "refuse an existing destination directory")
	remove := flag.Bool("rm", false, "delete the archive after extraction")
	flag.Parse()

	zipPath, err := cli.Argument(flag.Args())
	if err != nil {
		cli.Fatal(err)
	}

	opts := []fetch.UnzipOption{fetch.WithParentDir(*dir)}
	if *noClobber {
		opts = append(opts, fetch.WithUnzipNoClobber())
	}
	if *remove {
		opts = append(opts, fetch.WithRemoveArchive())
	}

	dest, err := fetch.Unzip(zipPath, opts...)
	if err != nil {
		cli.Fatal(err)
	}
	fmt.Println(dest)
}
