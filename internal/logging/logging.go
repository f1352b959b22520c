// Package logging builds the zerolog loggers used by the gridpath CLI and
// HTTP service.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/gridpath/internal/config"
)

// Logger is the structured logger type shared across gridpath.
type Logger = zerolog.Logger

// NewLogger returns a stderr logger configured from cfg.Logging.
func NewLogger(cfg config.Config) Logger {
	return New(os.Stderr, cfg.Logging.Level, cfg.Logging.Pretty)
}

// New returns a logger writing to w. An unparsable level falls back to info;
// pretty switches to the human-readable console writer.
func New(w io.Writer, level string, pretty bool) Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
