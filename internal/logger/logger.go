// Package logger sets up the zerolog logger shared by the binaries.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger initializes the global zerolog logger with the given level and returns it.
// An empty level means info; a nil writer means stderr.
func InitLogger(level string, out io.Writer) (zerolog.Logger, error) {
	if out == nil {
		out = os.Stderr
	}
	lvl := zerolog.InfoLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			return zerolog.Nop(), err
		}
		lvl = parsed
	}
	log.Logger = zerolog.New(out).
		With().
		Timestamp().
		Logger().
		Level(lvl)
	return log.Logger, nil
}
