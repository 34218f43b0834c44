package render

import (
	"log/slog"
	"os"
	"sync/atomic"
)

// logLevel controls the level of the default logger.
// Default is LevelInfo, which suppresses Debug messages.
var logLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging on the default logger.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// defaultLogger writes text records to stderr at the shared logLevel.
var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(defaultLogger)
}

// SetLogger replaces the logger used for diagnostics by this package and
// its backends. Pass nil to go back to the stderr logger.
//
// Levels used:
//   - [slog.LevelDebug]: per-attribute layout trace, buffer growth
//   - [slog.LevelInfo]: shader programs linked, textures uploaded
//   - [slog.LevelWarn]: skipped operations and fallbacks (capacity, unknown types)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = defaultLogger
	}
	loggerPtr.Store(l)
}

// Logger returns the current diagnostics logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
