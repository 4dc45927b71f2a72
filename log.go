package reorder

import (
	"log/slog"
	"os"
	"sync/atomic"
)

// logLevel controls the level for reorder diagnostics.
// Default is LevelInfo, which suppresses Debug messages.
var logLevel = new(slog.LevelVar)

var pkgLogger atomic.Pointer[slog.Logger]

func init() {
	pkgLogger.Store(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
}

// SetVerbose enables or disables debug logging for drag and drop traces.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// LogLevel returns the level variable used by the default logger, so a
// replacement handler can share it.
func LogLevel() *slog.LevelVar {
	return logLevel
}

// SetLogger replaces the package logger. Components created afterwards
// derive their loggers from l. A nil logger is ignored.
func SetLogger(l *slog.Logger) {
	if l != nil {
		pkgLogger.Store(l)
	}
}

// componentLogger returns the package logger tagged with a component name.
func componentLogger(name string) *slog.Logger {
	return pkgLogger.Load().With(slog.String("component", name))
}
