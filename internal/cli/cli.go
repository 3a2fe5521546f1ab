// Package cli holds the few conventions every stage command shares:
// one positional argument that may arrive on stdin, and uniform fatal
// error reporting. The stages are designed to chain, each printing its
// primary output path to stdout for the next stage to consume.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNoArgument indicates an empty positional argument with nothing on
// stdin either.
var ErrNoArgument = errors.New("cli: no argument given")

// Argument resolves a stage's single positional argument. An explicit
// value is used as-is; "-" or no value means the first non-empty line
// of stdin, which is how the stages pipe into each other.
func Argument(args []string) (string, error) {
	return ArgumentFrom(args, os.Stdin)
}

// ArgumentFrom is Argument with an explicit stdin, for tests.
func ArgumentFrom(args []string, stdin io.Reader) (string, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("cli: expected one argument, got %d", len(args))
	}
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}

	return readLine(stdin)
}

// readLine returns the first non-empty trimmed line of r.
func readLine(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			return line, nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("cli: reading stdin: %w", err)
	}

	return "", ErrNoArgument
}

// Fatal prints err to stderr and exits non-zero. Stage commands keep
// stdout for their primary result only.
func Fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
