// Package logging configures structured logging for lbnb.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Setup installs the default slog logger writing to stderr, so command
// output on stdout stays machine-readable.
func Setup(devMode bool) {
	slog.SetDefault(New(os.Stderr, devMode))
}

// New builds a logger for w. Dev mode logs human-readable text at debug
// level, which includes generated search SQL. Otherwise it logs JSON at info.
func New(w io.Writer, devMode bool) *slog.Logger {
	if devMode {
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}
