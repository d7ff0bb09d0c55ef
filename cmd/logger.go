package cmd

import (
	"io"
	"log/slog"
)

// NewLogger writes JSON in production and text elsewhere.
func NewLogger(cfg Config, w io.Writer) *slog.Logger {
	level, _ := cfg.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}

	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
