package logger

import (
	"log/slog"
	"os"
)

var globalLogger *slog.Logger

// Init initializes the global logger. Verbose mode lowers the level to Debug.
func Init(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	globalLogger = slog.New(slog.NewTextHandler(os.Stderr, opts))
	slog.SetDefault(globalLogger)
}

func get() *slog.Logger {
	if globalLogger == nil {
		Init(false)
	}
	return globalLogger
}

// Debug logs a debug message (only shown in verbose mode)
func Debug(msg string, args ...any) {
	get().Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	get().Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	get().Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	get().Error(msg, args...)
}
