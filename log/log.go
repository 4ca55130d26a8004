// Wraps zerolog, ensuring the timestamp goes in the beginning and stacks
// from oops errors render as structured fields.
package log

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

var logger zerolog.Logger

func init() {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.DurationFieldInteger = true
	zerolog.TimeFieldFormat = time.RFC3339Nano
	logger = zerolog.New(os.Stderr).With().Stack().Logger().Level(zerolog.InfoLevel)
}

// SetVerbose lowers the level filter to Debug; the default drops Debug events.
func SetVerbose() {
	logger = logger.Level(zerolog.DebugLevel)
}

func Debug() *zerolog.Event {
	return logger.Debug().Timestamp()
}

func Info() *zerolog.Event {
	return logger.Info().Timestamp()
}

func Warn() *zerolog.Event {
	return logger.Warn().Timestamp()
}

func Error() *zerolog.Event {
	return logger.Error().Timestamp()
}
