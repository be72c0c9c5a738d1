package logging

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config controls how the root logger is constructed.
type Config struct {
	Level   string // debug, info, warn, error (default info)
	Format  string // json or console (default json)
	Service string
	Version string
}

// New returns a structured zerolog logger with service metadata attached.
func New(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if strings.EqualFold(cfg.Format, "console") {
		writer := zerolog.ConsoleWriter{Out: os.Stderr}
		logger = zerolog.New(writer)
	} else {
		logger = zerolog.New(os.Stdout)
	}

	ctx := logger.Level(level).With().Timestamp()
	if cfg.Service != "" {
		ctx = ctx.Str(FieldService, cfg.Service)
	}
	if cfg.Version != "" {
		ctx = ctx.Str(FieldVersion, cfg.Version)
	}
	return ctx.Logger()
}

// Nop returns a disabled logger, useful as a default in tests.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
