package solver

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Sentinel errors for solver configuration and execution.
var (
	// ErrSolverNotFound indicates a configured executable that is missing
	// or not a regular file.
	ErrSolverNotFound = errors.New("solver: executable not found")

	// ErrSolverFailed indicates a solver process exiting non-zero.
	ErrSolverFailed = errors.New("solver: execution failed")

	// ErrBadOutput indicates solver stdout not matching the expected
	// "<nodes> => <cardinality>" format.
	ErrBadOutput = errors.New("solver: malformed output")

	// ErrNoSolvers indicates a configuration naming no solvers.
	ErrNoSolvers = errors.New("solver: no solvers configured")

	// ErrDuplicateName indicates two configured solvers sharing a name.
	ErrDuplicateName = errors.New("solver: duplicate solver name")

	// ErrBadSpec indicates a solver entry with an empty name.
	ErrBadSpec = errors.New("solver: invalid solver spec")
)

// Spec names one external solver executable.
type Spec struct {
	// Name labels the solver in results files and tables ("cvc", "vc",
	// "local_ratio_vc", ...).
	Name string `toml:"name"`

	// Path locates the executable.
	Path string `toml:"path"`
}

// Config is the explicit solver-set configuration passed into the
// comparison harness.
type Config struct {
	// Solvers lists the executables to compare, in table order.
	Solvers []Spec `toml:"solver"`
}

// LoadConfig reads and validates a TOML solver configuration:
//
//	[[solver]]
//	name = "cvc"
//	path = "/usr/local/bin/cvc"
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("solver: decoding config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that at least one solver is configured, names are
// non-empty and unique, and every executable exists as a regular file.
func (c Config) Validate() error {
	if len(c.Solvers) == 0 {
		return ErrNoSolvers
	}
	seen := make(map[string]struct{}, len(c.Solvers))
	for _, s := range c.Solvers {
		if s.Name == "" {
			return fmt.Errorf("%w: empty name (path %q)", ErrBadSpec, s.Path)
		}
		if _, dup := seen[s.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateName, s.Name)
		}
		seen[s.Name] = struct{}{}

		info, err := os.Stat(s.Path)
		if err != nil {
			return fmt.Errorf("%w: %q (%v)", ErrSolverNotFound, s.Path, err)
		}
		if !info.Mode().IsRegular() {
			return fmt.Errorf("%w: %q is not a regular file", ErrSolverNotFound, s.Path)
		}
	}

	return nil
}
