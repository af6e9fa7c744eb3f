package cli

import (
	"io"
	"log/slog"
)

// newLogger returns a text slog.Logger on w, at debug level when debug is set
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
