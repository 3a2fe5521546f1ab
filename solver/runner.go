package solver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/ta7mid/vc-research-experiments/core"
	"github.com/ta7mid/vc-research-experiments/dataset"
)

// RawResult is the typed outcome of one solver process: captured standard
// output and the exit code, nothing interpreted.
type RawResult struct {
	Stdout   string
	ExitCode int
}

// Cover is a parsed solver answer.
type Cover struct {
	// Nodes is the reported vertex cover, in the solver's own order.
	Nodes []int

	// Cardinality is the reported cover size; always equal to
	// len(Nodes) after parsing.
	Cardinality int
}

// Run executes one solver as a synchronous subprocess: edges streams to
// its standard input, stdout and stderr are captured, and the call blocks
// until the process exits.
//
// Returns ErrSolverNotFound when spec.Path is missing or not a regular
// file, and ErrSolverFailed (carrying the exit code and a stderr excerpt)
// on a non-zero exit.
func Run(ctx context.Context, spec Spec, edges io.Reader) (RawResult, error) {
	info, err := os.Stat(spec.Path)
	if err != nil {
		return RawResult{}, fmt.Errorf("%w: %q (%v)", ErrSolverNotFound, spec.Path, err)
	}
	if !info.Mode().IsRegular() {
		return RawResult{}, fmt.Errorf("%w: %q is not a regular file", ErrSolverNotFound, spec.Path)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, spec.Path)
	cmd.Stdin = edges
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err = cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return RawResult{Stdout: stdout.String(), ExitCode: exitErr.ExitCode()},
				fmt.Errorf("%w: %q exited %d: %s",
					ErrSolverFailed, spec.Name, exitErr.ExitCode(), firstLine(stderr.String()))
		}

		return RawResult{}, fmt.Errorf("solver: running %q: %w", spec.Name, err)
	}

	return RawResult{Stdout: stdout.String(), ExitCode: 0}, nil
}

// Solve runs spec on the canonical graph c and parses its answer.
func Solve(ctx context.Context, spec Spec, c *core.Canonical) (Cover, error) {
	var edges bytes.Buffer
	if err := dataset.WriteEdges(&edges, c); err != nil {
		return Cover{}, err
	}
	raw, err := Run(ctx, spec, &edges)
	if err != nil {
		return Cover{}, err
	}

	return ParseOutput(raw.Stdout)
}

// ParseOutput interprets one solver answer of the form
//
//	<comma-and-space-separated node list> => <integer cardinality>
//
// An empty node list with cardinality 0 is a valid answer (the empty
// graph needs no cover). Returns ErrBadOutput for any deviation,
// including a cardinality disagreeing with the node list length.
func ParseOutput(stdout string) (Cover, error) {
	line := firstLine(stdout)
	left, right, found := strings.Cut(line, "=>")
	if !found {
		return Cover{}, fmt.Errorf("%w: missing \"=>\" in %q", ErrBadOutput, line)
	}

	card, err := strconv.Atoi(strings.TrimSpace(right))
	if err != nil || card < 0 {
		return Cover{}, fmt.Errorf("%w: cardinality %q", ErrBadOutput, strings.TrimSpace(right))
	}

	var nodes []int
	for _, tok := range strings.Split(left, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, convErr := strconv.Atoi(tok)
		if convErr != nil || v < 0 {
			return Cover{}, fmt.Errorf("%w: node %q", ErrBadOutput, tok)
		}
		nodes = append(nodes, v)
	}

	if card != len(nodes) {
		return Cover{}, fmt.Errorf("%w: cardinality %d but %d nodes listed", ErrBadOutput, card, len(nodes))
	}

	return Cover{Nodes: nodes, Cardinality: card}, nil
}

// VerifyCover reports whether nodes is a vertex cover of c: every edge
// must have at least one endpoint in the set.
// Complexity: O(order + size)
func VerifyCover(c *core.Canonical, nodes []int) bool {
	in := make([]bool, c.Order())
	for _, v := range nodes {
		if v < 0 || v >= c.Order() {
			return false
		}
		in[v] = true
	}
	for _, e := range c.Edges() {
		if !in[e[0]] && !in[e[1]] {
			return false
		}
	}

	return true
}

// firstLine trims stdout down to its first non-empty line.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			return t
		}
	}

	return ""
}
