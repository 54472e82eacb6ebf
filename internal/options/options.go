// Package options contains the program options.
package options

import "strings"

// Output formats of the decoded tokens.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatDump = "dump"
)

// DefaultWorkers is the default number of workers of the parallel decoder.
const DefaultWorkers = 4

// Formats lists all supported output formats.
var Formats = []string{FormatText, FormatJSON, FormatDump}

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input .kmd file"`
	Output string `flag:"o" usage:"output file (default: stdout)"`
	Batch  string `flag:"batch" usage:"batch process files matching pattern (e.g. *.kmd)"`
}

// Flags contains behavior options.
type Flags struct {
	Format   string `flag:"f" usage:"output format: text, json, dump" default:"text"`
	Parallel bool   `flag:"parallel" usage:"decode lines concurrently"`
	Workers  int    `flag:"workers" usage:"number of workers of the parallel decoder" default:"4"`
	Strict   bool   `flag:"strict" usage:"fail if text follows the symbol table"`
	Debug    bool   `flag:"debug" usage:"enable debug logging"`
	Quiet    bool   `flag:"q" usage:"quiet mode"`
}

// Program options of the decoder.
type Program struct {
	Parameters
	Flags
}

// New returns a new options instance with default options.
func New() Program {
	return Program{
		Flags: Flags{
			Format:  FormatText,
			Workers: DefaultWorkers,
		},
	}
}

// NormalizeFormat returns the lower case version of the format name.
func NormalizeFormat(format string) string {
	return strings.ToLower(strings.TrimSpace(format))
}
