package logging

import (
	"log/slog"
	"os"
)

// NewLogger builds the process-wide JSON logger. Run IDs and per-record
// identifiers are attached as attrs at the call sites.
func NewLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}
