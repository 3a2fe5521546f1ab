package parse

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for graph loading.
var (
	// ErrEmptyPath indicates an empty file path or empty inline text.
	ErrEmptyPath = errors.New("parse: empty path or text")

	// ErrFormat indicates input that does not parse as any supported
	// graph format.
	ErrFormat = errors.New("parse: unrecognized graph format")

	// ErrNoGraphFile indicates a directory containing no candidate
	// graph data file.
	ErrNoGraphFile = errors.New("parse: no graph data file in directory")
)

// Format selects the representation a Source is parsed as.
type Format int

const (
	// FormatAuto guesses the format from the filename extension, falling
	// back to edge list for inline text.
	FormatAuto Format = iota

	// FormatEdgeList parses the input as a plain edge list.
	FormatEdgeList

	// FormatMatrixMarket parses the input as a Matrix Market file.
	FormatMatrixMarket
)

// String implements fmt.Stringer for diagnostics.
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatEdgeList:
		return "edges"
	case FormatMatrixMarket:
		return "mtx"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps the CLI format names onto Format values.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "", "auto":
		return FormatAuto, nil
	case "edges":
		return FormatEdgeList, nil
	case "mtx":
		return FormatMatrixMarket, nil
	default:
		return FormatAuto, fmt.Errorf("%w: %q", ErrFormat, name)
	}
}

// SourceKind tags the variant held by a Source.
type SourceKind int

const (
	// SourceFile addresses graph data by filesystem path.
	SourceFile SourceKind = iota

	// SourceInline carries graph data as an in-memory string.
	SourceInline
)

// Source is a tagged reference to raw graph data: either a file on disk or
// inline text. Construct one with File or Inline; the zero value is an
// empty file path and fails every operation with ErrEmptyPath.
type Source struct {
	Kind SourceKind
	Path string // valid when Kind == SourceFile
	Text string // valid when Kind == SourceInline
}

// File addresses the graph data stored at path.
func File(path string) Source { return Source{Kind: SourceFile, Path: path} }

// Inline carries raw graph text directly.
func Inline(text string) Source { return Source{Kind: SourceInline, Text: text} }

// read returns the raw text of the source and, for files, the extension
// used by format auto-detection (without the leading dot).
func (s Source) read() (text, ext string, err error) {
	switch s.Kind {
	case SourceInline:
		if s.Text == "" {
			return "", "", ErrEmptyPath
		}

		return s.Text, "", nil
	case SourceFile:
		if s.Path == "" {
			return "", "", ErrEmptyPath
		}
		raw, err := os.ReadFile(s.Path)
		if err != nil {
			return "", "", fmt.Errorf("parse: reading %q: %w", s.Path, err)
		}
		ext = strings.TrimPrefix(filepath.Ext(s.Path), ".")

		return string(raw), ext, nil
	default:
		return "", "", fmt.Errorf("parse: unknown source kind %d", s.Kind)
	}
}
