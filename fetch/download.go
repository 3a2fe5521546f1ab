package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Sentinel errors for dataset retrieval.
var (
	// ErrExists indicates the destination already exists while no-clobber
	// was requested.
	ErrExists = errors.New("fetch: destination already exists")

	// ErrBadFilename indicates an explicit filename containing path
	// separators or nothing at all.
	ErrBadFilename = errors.New("fetch: bad destination filename")

	// ErrHTTPStatus indicates a non-2xx response from the server.
	ErrHTTPStatus = errors.New("fetch: unexpected HTTP status")
)

// DownloadOption configures a Download call.
type DownloadOption func(*downloadConfig)

type downloadConfig struct {
	destDir   string // empty: fresh temp dir
	filename  string // empty: last URL path segment
	noClobber bool
	client    *http.Client
}

// WithDestDir saves the file under dir, creating it as needed, instead of
// a fresh temporary directory.
func WithDestDir(dir string) DownloadOption {
	return func(c *downloadConfig) { c.destDir = dir }
}

// WithFilename overrides the filename guessed from the URL. It must not
// contain path separators.
func WithFilename(name string) DownloadOption {
	return func(c *downloadConfig) { c.filename = name }
}

// WithNoClobber refuses to overwrite an existing destination file.
func WithNoClobber() DownloadOption {
	return func(c *downloadConfig) { c.noClobber = true }
}

// WithHTTPClient substitutes the HTTP client (tests use a test server's
// client; the default is http.DefaultClient).
func WithHTTPClient(client *http.Client) DownloadOption {
	return func(c *downloadConfig) {
		if client != nil {
			c.client = client
		}
	}
}

// Download saves the body of rawURL to disk and returns the path of the
// downloaded file.
// Complexity: O(body size); the transfer is streamed, not buffered whole.
func Download(ctx context.Context, rawURL string, opts ...DownloadOption) (dest string, err error) {
	cfg := downloadConfig{client: http.DefaultClient}
	for _, opt := range opts {
		opt(&cfg)
	}

	destDir := cfg.destDir
	if destDir == "" {
		tmp, mkErr := os.MkdirTemp("", "fetch-")
		if mkErr != nil {
			return "", fmt.Errorf("fetch: temporary directory: %w", mkErr)
		}
		destDir = tmp
		// the temp dir is ours alone; don't leak it when the download
		// fails further down
		defer func() {
			if err != nil {
				_ = os.RemoveAll(tmp)
			}
		}()
	} else if err := ensureDir(destDir); err != nil {
		return "", err
	}

	filename := cfg.filename
	if filename == "" {
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", fmt.Errorf("fetch: parsing URL %q: %w", rawURL, err)
		}
		filename = path.Base(u.Path)
		if filename == "." || filename == "/" || filename == "" {
			return "", fmt.Errorf("%w: cannot guess a filename from %q", ErrBadFilename, rawURL)
		}
	} else if strings.ContainsRune(filename, os.PathSeparator) || strings.ContainsRune(filename, '/') {
		return "", fmt.Errorf("%w: %q contains path separators", ErrBadFilename, filename)
	}

	destPath := filepath.Join(destDir, filename)
	if cfg.noClobber {
		if _, err := os.Stat(destPath); err == nil {
			return "", fmt.Errorf("%w: %q", ErrExists, destPath)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("fetch: building request for %q: %w", rawURL, err)
	}
	resp, err := cfg.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch: requesting %q: %w", rawURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s from %q", ErrHTTPStatus, resp.Status, rawURL)
	}

	f, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("fetch: creating %q: %w", destPath, err)
	}
	if _, err = io.Copy(f, resp.Body); err != nil {
		_ = f.Close()
		_ = os.Remove(destPath) // never leave a truncated download behind
		return "", fmt.Errorf("fetch: downloading %q: %w", rawURL, err)
	}
	if err = f.Close(); err != nil {
		_ = os.Remove(destPath)
		return "", fmt.Errorf("fetch: closing %q: %w", destPath, err)
	}

	return destPath, nil
}

// ensureDir creates dir if missing and rejects non-directory paths.
func ensureDir(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("fetch: creating %q: %w", dir, err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("fetch: inspecting %q: %w", dir, err)
	case !info.IsDir():
		return fmt.Errorf("fetch: %q exists but is not a directory", dir)
	default:
		return nil
	}
}
