package tabulate

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

// ErrUnknownFormat indicates a table format name this package does not
// render.
var ErrUnknownFormat = errors.New("tabulate: unknown format")

// Format selects a table rendering.
type Format uint8

const (
	// FormatSimple renders space-aligned columns.
	FormatSimple Format = iota

	// FormatTSV renders tab-separated values, one header line.
	FormatTSV

	// FormatMarkdown renders a GitHub-style Markdown table.
	FormatMarkdown
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case FormatSimple:
		return "simple"
	case FormatTSV:
		return "tsv"
	case FormatMarkdown:
		return "markdown"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// ParseFormat maps a format name to its Format.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "simple":
		return FormatSimple, nil
	case "tsv":
		return FormatTSV, nil
	case "markdown":
		return FormatMarkdown, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// RenderData writes one line per graph with its stored properties.
func RenderData(w io.Writer, rows []Row, format Format) error {
	header := []string{"graph", "order", "size", "max_degree", "avg_degree", "density", "connected"}
	records := make([][]string, len(rows))
	for i, r := range rows {
		records[i] = []string{
			r.Name,
			strconv.Itoa(r.Props.Order),
			strconv.Itoa(r.Props.Size),
			strconv.Itoa(r.Props.MaxDegree),
			formatFloat(r.Props.AvgDegree),
			formatFloat(r.Props.Density),
			strconv.FormatBool(r.Props.Connected),
		}
	}

	return renderTable(w, header, records, format)
}

// RenderResults writes one line per graph with a cardinality column per
// solver; a solver with no answer for a graph renders as "-".
func RenderResults(w io.Writer, rows []ResultRow, format Format) error {
	solvers := Solvers(rows)
	header := append([]string{"graph", "order", "size"}, solvers...)
	records := make([][]string, len(rows))
	for i, r := range rows {
		rec := []string{r.Name, strconv.Itoa(r.Order), strconv.Itoa(r.Size)}
		for _, s := range solvers {
			if card, ok := r.Cardinality[s]; ok {
				rec = append(rec, strconv.Itoa(card))
			} else {
				rec = append(rec, "-")
			}
		}
		records[i] = rec
	}

	return renderTable(w, header, records, format)
}

func renderTable(w io.Writer, header []string, records [][]string, format Format) error {
	switch format {
	case FormatSimple:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
			return err
		}
		for _, rec := range records {
			if _, err := fmt.Fprintln(tw, strings.Join(rec, "\t")); err != nil {
				return err
			}
		}

		return tw.Flush()

	case FormatTSV:
		if _, err := fmt.Fprintln(w, strings.Join(header, "\t")); err != nil {
			return err
		}
		for _, rec := range records {
			if _, err := fmt.Fprintln(w, strings.Join(rec, "\t")); err != nil {
				return err
			}
		}

		return nil

	case FormatMarkdown:
		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(header, " | ")); err != nil {
			return err
		}
		rule := make([]string, len(header))
		for i := range rule {
			rule[i] = "---"
		}
		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(rule, " | ")); err != nil {
			return err
		}
		for _, rec := range records {
			if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(rec, " | ")); err != nil {
				return err
			}
		}

		return nil

	default:
		return fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}
}

// formatFloat prints property floats compactly: integers without a
// fraction, everything else with four decimals.
func formatFloat(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}

	return strconv.FormatFloat(v, 'f', 4, 64)
}
