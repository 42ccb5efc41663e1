// Package log wraps log/slog with a process-wide JSON logger and a few
// convenience helpers.
package log

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	logger *slog.Logger
	mu     sync.RWMutex
)

// ParseLogLevel converts a string log level to a slog.Level.
// Valid values are "debug", "info", "warn", "error"; anything else
// defaults to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// InitLog initializes or reinitializes the logger with the specified log
// level. It may be called again at runtime to change the level, e.g. after
// a configuration reload.
func InitLog(logLevel string) {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: ParseLogLevel(logLevel),
	})

	mu.Lock()
	defer mu.Unlock()
	logger = slog.New(handler)
}

// GetLog returns the configured slog.Logger. If InitLog has not been called
// yet, a default info-level JSON logger is created.
func GetLog() *slog.Logger {
	mu.RLock()
	if logger != nil {
		defer mu.RUnlock()
		return logger
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
	return logger
}

// Debug logs a message at Debug level.
func Debug(msg string, args ...any) { GetLog().Debug(msg, args...) }

// Info logs a message at Info level.
func Info(msg string, args ...any) { GetLog().Info(msg, args...) }

// Warn logs a message at Warn level.
func Warn(msg string, args ...any) { GetLog().Warn(msg, args...) }

// Error logs a message at Error level.
func Error(msg string, args ...any) { GetLog().Error(msg, args...) }

// Errorf logs the message with its structured arguments at Error level and
// returns it as an error for the caller to propagate.
func Errorf(msg string, args ...any) error {
	Error(msg, args...)
	return fmt.Errorf("%s", msg)
}

// Fatalf logs a formatted message and exits.
func Fatalf(format string, args ...any) {
	GetLog().Error(fmt.Sprintf(format, args...))
	os.Exit(1)
}
