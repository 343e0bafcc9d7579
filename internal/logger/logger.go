// Package logger provides levelled, structured logging for the editor and its host.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"
)

// Fields represents structured log fields
type Fields map[string]interface{}

var (
	mu      sync.RWMutex
	level   = new(slog.LevelVar)
	current = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
)

// Setup sends log output to w at the named level (debug, info, warn or error).
func Setup(w io.Writer, name string) error {
	l, err := ParseLevel(name)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	level.Set(l)
	current = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return nil
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
}

// Debug logs a debug message with structured fields
func Debug(msg string, fields Fields) {
	get().Debug(msg, attrs(fields)...)
}

// Info logs an informational message with structured fields
func Info(msg string, fields Fields) {
	get().Info(msg, attrs(fields)...)
}

// Warn logs a warning message with structured fields
func Warn(msg string, fields Fields) {
	get().Warn(msg, attrs(fields)...)
}

// Error logs an error message with structured fields
func Error(msg string, err error, fields Fields) {
	args := attrs(fields)
	if err != nil {
		args = append(args, slog.String("error", err.Error()))
	}
	get().Error(msg, args...)
}

func get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// attrs turns fields into slog arguments, sorted so output is stable.
func attrs(fields Fields) []any {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]any, 0, len(keys))
	for _, k := range keys {
		out = append(out, slog.Any(k, fields[k]))
	}
	return out
}
