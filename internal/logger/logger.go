package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

var Logger zerolog.Logger

// Init configures the loggers on stdout. Call it after config.Load so
// values from .env apply.
func Init(level, format string) {
	Configure(os.Stdout, level, format)
}

// InitWithWriter configures the loggers from LOG_LEVEL and LOG_FORMAT.
func InitWithWriter(w io.Writer) {
	Configure(w, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
}

// Configure sets the package and global loggers. format is "json" or
// "console"; an empty or unknown level means info.
func Configure(w io.Writer, level, format string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer = w
	if format != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	Logger = zerolog.New(out).With().
		Timestamp().
		Str("service", "discovery-service").
		Logger().
		Level(lvl)

	zlog.Logger = Logger
}
