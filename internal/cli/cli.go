// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/retroenv/kmdparse/internal/options"
	"github.com/retroenv/kmdparse/pkg/kmd"
)

// ParseFlags parses the command line flags of the process and returns the program options.
func ParseFlags() (options.Program, error) {
	return Parse(os.Args[0], os.Args[1:])
}

// Parse parses the given command line arguments and returns the program options.
func Parse(name string, arguments []string) (options.Program, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	opts := options.New()
	readOptionFlags(flags, &opts)

	err := flags.Parse(arguments)
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "" && opts.Batch == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if opts.Input == "" && opts.Batch == "" {
		opts.Input = args[0]
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage and the flag defaults.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: kmdparse [options] <file to decode>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && strings.HasPrefix(arg, "-") {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to decode, please pass the file to decode as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Format = options.NormalizeFormat(opts.Format)
	if !slices.Contains(options.Formats, opts.Format) {
		return fmt.Errorf("unsupported format: %s. Valid options: %s",
			opts.Format, strings.Join(options.Formats, ", "))
	}

	if opts.Workers < 1 {
		return fmt.Errorf("%w: %d", kmd.ErrInvalidWorkers, opts.Workers)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input .kmd file")
	flags.StringVar(&opts.Output, "o", "", "name of the output file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically name output files, for example *.kmd")
	flags.StringVar(&opts.Format, "f", options.FormatText, "output format of the decoded records (text/json/dump)")
	flags.BoolVar(&opts.Parallel, "parallel", false, "decode the lines of the file concurrently")
	flags.IntVar(&opts.Workers, "workers", options.DefaultWorkers, "number of workers used by the parallel decoder")
	flags.BoolVar(&opts.Strict, "strict", false, "fail if unparsed text follows the symbol table")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
