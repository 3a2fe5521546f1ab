// Package logutil builds the zap logger shared by the stage commands.
//
// Two environment variables control it, so every stage in a pipeline is
// configured the same way without per-command flags: LOGLEVEL (debug,
// info, warn, error; default warn) and LOGFILE (append to a file
// instead of stderr). Library packages never log on their own; they
// accept a logger where one is useful.
package logutil

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	levelVar = "LOGLEVEL"
	fileVar  = "LOGFILE"
)

// New builds a logger from LOGLEVEL and LOGFILE. Unset variables mean
// warn-level console output, which keeps pipeline stdout clean for
// piping stage results.
func New() (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if raw := os.Getenv(levelVar); raw != "" {
		if err := level.UnmarshalText([]byte(strings.ToLower(raw))); err != nil {
			return nil, fmt.Errorf("logutil: %s=%q: %w", levelVar, raw, err)
		}
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if file := os.Getenv(fileVar); file != "" {
		cfg.OutputPaths = []string{file}
		cfg.ErrorOutputPaths = []string{file}
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logutil: building logger: %w", err)
	}

	return log, nil
}

// Must is New for command main functions: any configuration error goes
// to stderr and exits.
func Must() *zap.Logger {
	log, err := New()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	return log
}
