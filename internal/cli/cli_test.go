package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/kmdparse/internal/options"
	"github.com/retroenv/kmdparse/pkg/kmd"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"prog", "hello.kmd"},
			want: options.Program{
				Parameters: options.Parameters{Input: "hello.kmd"},
				Flags:      options.Flags{Format: options.FormatText, Workers: options.DefaultWorkers},
			},
		},
		{
			name: "input flag",
			args: []string{"prog", "-i", "hello.kmd", "-o", "hello.txt"},
			want: options.Program{
				Parameters: options.Parameters{Input: "hello.kmd", Output: "hello.txt"},
				Flags:      options.Flags{Format: options.FormatText, Workers: options.DefaultWorkers},
			},
		},
		{
			name: "format is normalized",
			args: []string{"prog", "-f", "JSON", "hello.kmd"},
			want: options.Program{
				Parameters: options.Parameters{Input: "hello.kmd"},
				Flags:      options.Flags{Format: options.FormatJSON, Workers: options.DefaultWorkers},
			},
		},
		{
			name: "parallel flags",
			args: []string{"prog", "-parallel", "-workers", "8", "-strict", "hello.kmd"},
			want: options.Program{
				Parameters: options.Parameters{Input: "hello.kmd"},
				Flags: options.Flags{
					Format:   options.FormatText,
					Parallel: true,
					Workers:  8,
					Strict:   true,
				},
			},
		},
		{
			name: "batch without positional argument",
			args: []string{"prog", "-batch", "*.kmd", "-q"},
			want: options.Program{
				Parameters: options.Parameters{Batch: "*.kmd"},
				Flags:      options.Flags{Format: options.FormatText, Workers: options.DefaultWorkers, Quiet: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantUsage bool
	}{
		{name: "no input", args: nil, wantUsage: true},
		{name: "unknown flag", args: []string{"-unknown", "hello.kmd"}, wantUsage: true},
		{name: "flag after file", args: []string{"hello.kmd", "-q"}, wantUsage: true},
		{name: "unsupported format", args: []string{"-f", "xml", "hello.kmd"}},
		{name: "zero workers", args: []string{"-workers", "0", "hello.kmd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("prog", tt.args)
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.wantUsage, errors.As(err, &usageErr))
		})
	}
}

func TestParseInvalidWorkers(t *testing.T) {
	_, err := Parse("prog", []string{"-workers", "-1", "hello.kmd"})
	assert.True(t, errors.Is(err, kmd.ErrInvalidWorkers))
}
