// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/kmdparse/internal/options"
	"github.com/retroenv/kmdparse/internal/pipeline"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var errOutputIsInput = errors.New("output file is the input file")

// ProcessFile decodes the input file of the options and writes the output.
// The output file is only created once decoding succeeded.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if opts.Output != "" && samePath(opts.Input, opts.Output) {
		return fmt.Errorf("%w: %s", errOutputIsInput, opts.Output)
	}

	var buf bytes.Buffer
	p := pipeline.New(logger)
	if _, err := p.Execute(ctx, opts, &buf); err != nil {
		return err
	}

	if opts.Output == "" {
		if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(opts.Output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing output file %s: %w", opts.Output, err)
	}
	return nil
}

// samePath returns whether both paths refer to the same file.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	if absA == absB {
		return true
	}

	infoA, errA := os.Stat(absA)
	infoB, errB := os.Stat(absB)
	return errA == nil && errB == nil && os.SameFile(infoA, infoB)
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts options.Program) ([]string, error) {
	if opts.Batch == "" {
		return []string{opts.Input}, nil
	}

	matches, err := filepath.Glob(opts.Batch)
	if err != nil {
		return nil, fmt.Errorf("globbing batch pattern: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match batch pattern '%s'", opts.Batch)
	}
	return matches, nil
}

// GenerateOutputFilename generates output filename for a given input file and output format.
func GenerateOutputFilename(inputFile, format string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + outputExtension(format)
}

func outputExtension(format string) string {
	switch format {
	case options.FormatJSON:
		return ".json"
	case options.FormatDump:
		return ".dump"
	default:
		return ".txt"
	}
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("kmdparse", log.String("version", buildinfo.Version(version, commit, date)))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Debug("Build", log.String("date", date))
	}
}
