package shellui

import (
	"devcon/internal/console"

	"go.uber.org/zap/zapcore"
)

// logLevels is the declared enum type behind the LOGLEVEL variable. Member
// order matches zapcore's severity order.
var logLevels = console.NewEnum("LogLevel", "DEBUG", "INFO", "WARN", "ERROR")

func levelIndex(l zapcore.Level) int {
	switch {
	case l <= zapcore.DebugLevel:
		return 0
	case l == zapcore.InfoLevel:
		return 1
	case l == zapcore.WarnLevel:
		return 2
	default:
		return 3
	}
}

func indexLevel(i int) zapcore.Level {
	switch i {
	case 0:
		return zapcore.DebugLevel
	case 1:
		return zapcore.InfoLevel
	case 2:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
