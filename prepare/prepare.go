package prepare

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ta7mid/vc-research-experiments/dataset"
	"github.com/ta7mid/vc-research-experiments/fetch"
	"github.com/ta7mid/vc-research-experiments/normalize"
	"github.com/ta7mid/vc-research-experiments/parse"
	"github.com/ta7mid/vc-research-experiments/props"
)

// Option configures a pipeline run.
type Option func(*config)

type config struct {
	log      *zap.Logger
	fetchOpt []fetch.DownloadOption
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

// WithDownloadOptions forwards options to the download step of Obtain.
func WithDownloadOptions(opts ...fetch.DownloadOption) Option {
	return func(c *config) { c.fetchOpt = append(c.fetchOpt, opts...) }
}

func newConfig(opts []Option) config {
	c := config{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// Run prepares the dataset directory dir in place: parse the first
// recognizable graph file, normalize, compute properties, and replace the
// directory contents with the canonical files.
//
// DESTRUCTIVE: on success nothing of the directory's prior contents
// survives, the raw download included. On failure the directory is left
// untouched.
func Run(dir string, opts ...Option) (props.Properties, error) {
	cfg := newConfig(opts)

	g, name, err := parse.Dir(dir)
	if err != nil {
		return props.Properties{}, fmt.Errorf("prepare: loading %q: %w", dir, err)
	}
	cfg.log.Info("parsed graph file",
		zap.String("dir", dir),
		zap.String("file", name),
		zap.Int("raw_order", g.Order()),
		zap.Int("raw_size", g.Size()))

	c, err := normalize.Normalize(g)
	if err != nil {
		return props.Properties{}, fmt.Errorf("prepare: normalizing %q: %w", dir, err)
	}

	p, err := props.Compute(c)
	if err != nil {
		return props.Properties{}, fmt.Errorf("prepare: computing properties of %q: %w", dir, err)
	}
	cfg.log.Info("computed properties",
		zap.String("dir", dir),
		zap.Int("order", p.Order),
		zap.Int("size", p.Size),
		zap.Bool("connected", p.Connected))

	if err = dataset.Write(dir, c, p); err != nil {
		return props.Properties{}, fmt.Errorf("prepare: writing %q: %w", dir, err)
	}

	return p, nil
}

// Obtain downloads the dataset archive at url, extracts it under
// dataParent, and prepares the extracted directory. Returns that
// directory and the computed properties.
func Obtain(ctx context.Context, url, dataParent string, opts ...Option) (string, props.Properties, error) {
	cfg := newConfig(opts)

	cfg.log.Info("downloading dataset", zap.String("url", url))
	zipPath, err := fetch.Download(ctx, url, cfg.fetchOpt...)
	if err != nil {
		return "", props.Properties{}, fmt.Errorf("prepare: %w", err)
	}

	cfg.log.Info("extracting archive", zap.String("zip", zipPath))
	dir, err := fetch.Unzip(zipPath, fetch.WithParentDir(dataParent), fetch.WithRemoveArchive())
	if err != nil {
		return "", props.Properties{}, fmt.Errorf("prepare: %w", err)
	}

	p, err := Run(dir, opts...)
	if err != nil {
		return "", props.Properties{}, err
	}

	return dir, p, nil
}
