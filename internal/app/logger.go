package app

import (
	"io"
	"log/slog"
)

// newLogger builds an isolated slog.Logger. It never touches the global
// logger, so several App instances can coexist in one test binary.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
