package platform

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger configures the global zerolog logger. Pretty output goes to
// stderr through a console writer; otherwise JSON lines go to stdout.
func InitLogger(level string, pretty bool) zerolog.Logger {
	var out io.Writer = os.Stdout
	if pretty {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	return SetupLogger(out, level)
}

// SetupLogger points the global logger at w with the given level.
// Unknown levels fall back to info.
func SetupLogger(w io.Writer, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	log.Logger = zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return log.Logger
}

func LogFatal(logger zerolog.Logger, msg string, err error) {
	logger.Error().Err(err).Msg(msg)
	os.Exit(1)
}
