package logutil_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/ta7mid/vc-research-experiments/internal/logutil"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("LOGLEVEL", "")
	t.Setenv("LOGFILE", "")

	log, err := logutil.New()
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	defer log.Sync()

	if log.Core().Enabled(zapcore.InfoLevel) {
		t.Error("default level should suppress info")
	}
}

func TestNew_LevelFromEnv(t *testing.T) {
	t.Setenv("LOGLEVEL", "DEBUG")
	t.Setenv("LOGFILE", "")

	log, err := logutil.New()
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	defer log.Sync()

	if !log.Core().Enabled(zapcore.DebugLevel) {
		t.Error("LOGLEVEL=DEBUG should enable debug")
	}
}

func TestNew_BadLevel(t *testing.T) {
	t.Setenv("LOGLEVEL", "chatty")

	if _, err := logutil.New(); err == nil {
		t.Fatal("expected error for unknown LOGLEVEL")
	}
}

func TestNew_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	t.Setenv("LOGLEVEL", "info")
	t.Setenv("LOGFILE", path)

	log, err := logutil.New()
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	log.Info("hello from the pipeline")
	log.Sync()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(raw), "hello from the pipeline") {
		t.Errorf("log file missing entry: %q", raw)
	}
}
