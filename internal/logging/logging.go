// Package logging configures the global slog logger for the CLI.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Setup configures the global slog logger with a text handler writing to
// w (os.Stderr when nil). Debug mode lowers the level to Debug so the
// pipeline stages can trace what they loaded, grouped, and wrote.
func Setup(debug bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
