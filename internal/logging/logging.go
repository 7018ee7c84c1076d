// internal/logging/logging.go
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New builds the run logger. Reports go to stdout, so the logger always
// writes to its own stream (stderr in the CLI). JSON when json is set, text
// otherwise. quiet raises the level to warn.
func New(w io.Writer, level string, json, quiet bool) *slog.Logger {
	lvl := ParseLevel(level)
	if quiet && lvl < slog.LevelWarn {
		lvl = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With("app", "hunt")
}

// ParseLevel maps debug|info|warn|error to a slog level; anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
