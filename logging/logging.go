// Package logging configures the global zerolog logger used by the engine
// and the command line tools.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Configure sets the global level from its name ("debug", "info", ...) and
// writes to stderr, human readable when pretty is set.
func Configure(level string, pretty bool) error {
	return ConfigureWriter(os.Stderr, level, pretty)
}

// ConfigureWriter is Configure with an explicit destination.
func ConfigureWriter(w io.Writer, level string, pretty bool) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return nil
}

// Debugf logs a formatted message at debug level.
func Debugf(format string, args ...interface{}) {
	log.Debug().Msgf(format, args...)
}
