package config

import (
	"testing"

	"github.com/retroenv/kmdparse/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name  string
		flags options.Flags
		want  log.Level
	}{
		{name: "default", flags: options.Flags{}, want: log.InfoLevel},
		{name: "debug", flags: options.Flags{Debug: true}, want: log.DebugLevel},
		{name: "quiet", flags: options.Flags{Quiet: true}, want: log.ErrorLevel},
		{name: "debug overrides quiet", flags: options.Flags{Debug: true, Quiet: true}, want: log.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Level(tt.flags))
		})
	}
}

func TestCreateLogger(t *testing.T) {
	logger := CreateLogger(options.Flags{Quiet: true})
	assert.NotNil(t, logger)
}
