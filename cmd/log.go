package cmd

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// newLogger returns the logger of the command line, writing to stderr so that
// stdout only carries the command's output.
//
// The level is debug with -v, else $WP_LOG_LEVEL (debug, info, warn, error),
// else warn.
func newLogger() zerolog.Logger {
	return logger(os.Stderr, verbose(), os.Getenv(EnvLogLevel))
}

func logger(w io.Writer, verbose bool, level string) zerolog.Logger {
	lvl := zerolog.WarnLevel
	if l, err := zerolog.ParseLevel(level); err == nil && l != zerolog.NoLevel {
		lvl = l
	}
	if verbose {
		lvl = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: !isTerminal(w)}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
