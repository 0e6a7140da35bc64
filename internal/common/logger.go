package common

import (
	"log/slog"
	"os"
)

// NewLogger builds the diagnostic logger shared by the CLI actions.
// User-facing pipeline output goes to stdout via fmt; this logger
// carries structured diagnostics on stderr.
func NewLogger(quiet bool) *slog.Logger {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
