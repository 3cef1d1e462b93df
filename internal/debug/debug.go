// Package debug provides debug logging for the module using log/slog.
package debug

import (
	"log/slog"
	"os"
	"sync"
)

var (
	logger  *slog.Logger
	enabled bool
	mu      sync.RWMutex
)

func init() {
	// Discard everything until Init(true) is called.
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

// Init configures the debug logger. With enable true, messages are written
// to stderr at debug level; with enable false they are silently discarded.
func Init(enable bool) {
	mu.Lock()
	defer mu.Unlock()

	enabled = enable
	level := slog.LevelError + 1
	if enable {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// Enabled reports whether debug logging is on.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

func get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Debug logs a debug message.
func Debug(msg string, args ...any) { get().Debug(msg, args...) }

// Warn logs a warning message.
func Warn(msg string, args ...any) { get().Warn(msg, args...) }

// Logger returns the underlying slog.Logger.
func Logger() *slog.Logger { return get() }
