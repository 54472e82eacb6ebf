// Package config sets up the logging of the decoder.
package config

import (
	"github.com/retroenv/kmdparse/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger for the given program flags.
func CreateLogger(flags options.Flags) *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Level = Level(flags)
	return log.NewWithConfig(cfg)
}

// Level returns the log level for the given program flags,
// debug output takes precedence over quiet mode.
func Level(flags options.Flags) log.Level {
	switch {
	case flags.Debug:
		return log.DebugLevel
	case flags.Quiet:
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
