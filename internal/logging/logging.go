// Package logging builds the zap logger used across devcon. The returned
// AtomicLevel is shared storage: the host binds it to the LOGLEVEL console
// variable, so SET LOGLEVEL DEBUG takes effect without restarting.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel maps a config level string to a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// New builds a production logger at the given level. When path is non-empty,
// output goes to that file instead of stderr (the interactive UI owns the
// terminal, so file logging is the default in TUI mode).
func New(level, path string) (*zap.Logger, zap.AtomicLevel, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, zap.AtomicLevel{}, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	if path != "" {
		cfg.OutputPaths = []string{path}
		cfg.ErrorOutputPaths = []string{path}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, cfg.Level, nil
}

// Nop returns a logger that discards everything. Used in tests and as the
// default before the host finishes wiring.
func Nop() *zap.Logger {
	return zap.NewNop()
}
