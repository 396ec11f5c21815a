package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "FLIP_DEBUG"

var (
	once   sync.Once
	logger *zap.Logger
)

// Logger returns the process-wide debug logger, initialised from EnvVar on
// first use. A path that cannot be opened falls back to a no-op logger.
func Logger() *zap.Logger {
	once.Do(func() {
		logger = zap.NewNop()
		path := os.Getenv(EnvVar)
		if path == "" {
			return
		}
		l, err := New(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "flip: debug logging disabled: %v\n", err)
			return
		}
		logger = l
	})
	return logger
}

// New builds a debug-level logger appending to the file at path.
// If path is empty, uses "debug.log" in the current directory.
func New(path string) (*zap.Logger, error) {
	if path == "" {
		path = "debug.log"
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	cfg.DisableStacktrace = true

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return l, nil
}
