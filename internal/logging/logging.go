// Package logging builds the application logger. The TUI owns the
// terminal, so logs always go to a file; when the file cannot be
// created the app runs with a nop logger rather than failing.
package logging

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production zap logger writing to path. An empty path or
// an unwritable location yields a nop logger.
func New(path string, verbose bool) *zap.Logger {
	if strings.TrimSpace(path) == "" {
		return zap.NewNop()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zap.NewNop()
	}

	config := zap.NewProductionConfig()
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{path}
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}
