package app

import (
	"io"
	"log/slog"

	"lattice-ca/internal/config"
)

// newLogger builds the run logger from the log_level and log_format values
// of a run file. Values that do not parse fall back to info and text; the
// global slog logger is left alone so concurrent runs keep separate output.
func newLogger(level, format string, w io.Writer) *slog.Logger {
	lvl, _ := config.ParseLevel(level)
	opts := &slog.HandlerOptions{Level: lvl}
	if f, _ := config.ParseFormat(format); f == config.FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
