package fetch

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsafePath indicates a ZIP entry that would escape the extraction
// directory.
var ErrUnsafePath = errors.New("fetch: zip entry escapes extraction directory")

// DefaultUnzipParent is where archives are extracted when no parent is
// given, relative to the working directory.
const DefaultUnzipParent = "data"

// UnzipOption configures an Unzip call.
type UnzipOption func(*unzipConfig)

type unzipConfig struct {
	parent        string
	noClobber     bool
	removeArchive bool
}

// WithParentDir extracts under dir instead of DefaultUnzipParent.
func WithParentDir(dir string) UnzipOption {
	return func(c *unzipConfig) { c.parent = dir }
}

// WithUnzipNoClobber refuses an already-existing extraction destination.
func WithUnzipNoClobber() UnzipOption {
	return func(c *unzipConfig) { c.noClobber = true }
}

// WithRemoveArchive deletes the ZIP file after successful extraction.
func WithRemoveArchive() UnzipOption {
	return func(c *unzipConfig) { c.removeArchive = true }
}

// Unzip extracts zipPath into <parent>/<name>, where name is the
// archive's filename up to its first dot, and returns the extraction
// directory.
// Complexity: O(archive size).
func Unzip(zipPath string, opts ...UnzipOption) (string, error) {
	if zipPath == "" {
		return "", fmt.Errorf("%w: empty archive path", ErrBadFilename)
	}
	cfg := unzipConfig{parent: DefaultUnzipParent}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := ensureDir(cfg.parent); err != nil {
		return "", err
	}

	// "ca-netscience.zip" → "ca-netscience"
	name := filepath.Base(zipPath)
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	if name == "" {
		return "", fmt.Errorf("%w: archive name %q", ErrBadFilename, filepath.Base(zipPath))
	}

	dest := filepath.Join(cfg.parent, name)
	if cfg.noClobber {
		if _, err := os.Stat(dest); err == nil {
			return "", fmt.Errorf("%w: %q", ErrExists, dest)
		}
	}

	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return "", fmt.Errorf("fetch: opening archive %q: %w", zipPath, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if err = extractEntry(dest, f); err != nil {
			return "", err
		}
	}

	if cfg.removeArchive {
		if err = os.Remove(zipPath); err != nil {
			return "", fmt.Errorf("fetch: removing archive %q: %w", zipPath, err)
		}
	}

	return dest, nil
}

// extractEntry writes one archive member under dest, refusing traversal.
func extractEntry(dest string, f *zip.File) error {
	target := filepath.Join(dest, filepath.FromSlash(f.Name))
	if target != dest && !strings.HasPrefix(target, dest+string(os.PathSeparator)) {
		return fmt.Errorf("%w: %q", ErrUnsafePath, f.Name)
	}

	if f.FileInfo().IsDir() {
		if err := os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("fetch: creating %q: %w", target, err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("fetch: creating %q: %w", filepath.Dir(target), err)
	}
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("fetch: opening zip entry %q: %w", f.Name, err)
	}
	defer rc.Close()

	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("fetch: creating %q: %w", target, err)
	}
	if _, err = io.Copy(out, rc); err != nil {
		_ = out.Close()
		return fmt.Errorf("fetch: extracting %q: %w", f.Name, err)
	}
	if err = out.Close(); err != nil {
		return fmt.Errorf("fetch: closing %q: %w", target, err)
	}

	return nil
}
