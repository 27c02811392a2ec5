// Package logger configures the process-wide zerolog instance and exposes
// package-level events for code paths that run before dependency wiring,
// like the migrator and the connection pool hooks.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config controls the global logging behavior.
type Config struct {
	// Level is a zerolog level name: debug, info, warn, error, fatal.
	Level string
	// Pretty switches to the human-readable console writer.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
}

// Configure installs the global logger and returns it. An unknown level
// name falls back to info instead of failing startup.
func Configure(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(level)

	var writer io.Writer = out
	if cfg.Pretty {
		writer = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	log.Logger = zerolog.New(writer).With().Timestamp().Logger()
	return log.Logger
}

// Debug starts a debug-level event on the global logger.
func Debug() *zerolog.Event {
	return log.Debug()
}

// Info starts an info-level event on the global logger.
func Info() *zerolog.Event {
	return log.Info()
}

// Warn starts a warn-level event on the global logger.
func Warn() *zerolog.Event {
	return log.Warn()
}

// Error starts an error-level event on the global logger.
func Error() *zerolog.Event {
	return log.Error()
}
