package logger

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	once sync.Once
	log  zerolog.Logger
)

// Init configures the process-wide logger. The level string is one of
// zerolog's named levels ("debug", "info", ...); anything unparseable
// falls back to info. In the "development" environment output is
// pretty-printed to the console instead of JSON.
func Init(level, env string) zerolog.Logger {
	once.Do(func() {
		lvl, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil || lvl == zerolog.NoLevel {
			lvl = zerolog.InfoLevel
		}

		zerolog.TimeFieldFormat = time.RFC3339

		var out = zerolog.New(os.Stdout)
		if env == "development" {
			out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
		}

		log = out.Level(lvl).With().
			Timestamp().
			Str("service", "client-gateway").
			Logger()
	})
	return log
}

// Get returns the configured logger. Calling Get before Init yields a
// usable info-level JSON logger.
func Get() zerolog.Logger {
	once.Do(func() {
		log = zerolog.New(os.Stdout).Level(zerolog.InfoLevel).With().
			Timestamp().
			Str("service", "client-gateway").
			Logger()
	})
	return log
}

// Reset discards the singleton so tests can re-Init with different
// settings.
func Reset() {
	once = sync.Once{}
	log = zerolog.Logger{}
}
