// Package pipeline orchestrates the decoding workflow stages.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/retroenv/kmdparse/internal/detector"
	"github.com/retroenv/kmdparse/internal/loader"
	"github.com/retroenv/kmdparse/internal/options"
	"github.com/retroenv/kmdparse/internal/symbols"
	"github.com/retroenv/kmdparse/internal/writer"
	"github.com/retroenv/kmdparse/pkg/kmd"
	"github.com/retroenv/retrogolib/log"
)

var errTrailingText = errors.New("unparsed text after symbol table")

// Pipeline orchestrates the complete decoding workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// Result contains the outcome of decoding a single file.
type Result struct {
	Tokens     []kmd.Token
	Remaining  string // text following the symbol table
	LineEnding detector.LineEnding
	Symbols    *symbols.Table
}

// New creates a new decoding pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute runs the complete decoding pipeline for the input file of the options.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, output io.Writer) (*Result, error) {
	text, err := p.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading file: %w", err)
	}

	return p.ExecuteWithText(ctx, text, opts, output)
}

// ExecuteWithText runs the decoding pipeline with an already loaded document.
// This is useful for testing and programmatic usage where the text is already in memory.
func (p *Pipeline) ExecuteWithText(ctx context.Context, text string, opts options.Program,
	output io.Writer) (*Result, error) {

	ending := p.detector.Detect(opts.Input, text)

	tokens, remaining, err := p.decode(ctx, text, opts)
	if err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}

	if err := p.checkRemaining(opts, remaining); err != nil {
		return nil, err
	}

	table := symbols.FromTokens(tokens)
	for _, name := range table.Duplicates() {
		p.logger.Warn("Label declared more than once", log.String("name", name))
	}

	p.printInfo(opts, tokens, table)

	w := writer.New(output, writer.Options{
		Format:  opts.Format,
		Symbols: table,
	})
	if err := w.Write(tokens); err != nil {
		return nil, fmt.Errorf("writing output: %w", err)
	}

	return &Result{
		Tokens:     tokens,
		Remaining:  remaining,
		LineEnding: ending,
		Symbols:    table,
	}, nil
}

// decode runs the sequential or the parallel decoder.
func (p *Pipeline) decode(ctx context.Context, text string, opts options.Program) ([]kmd.Token, string, error) {
	if !opts.Parallel {
		return kmd.Parse(text)
	}

	p.logger.Debug("Decoding lines concurrently", log.Int("workers", opts.Workers))
	return kmd.ParseParallel(ctx, text, opts.Workers)
}

// checkRemaining handles text that follows the symbol table.
func (p *Pipeline) checkRemaining(opts options.Program, remaining string) error {
	if remaining == "" {
		return nil
	}
	if opts.Strict {
		return fmt.Errorf("%w: %d bytes", errTrailingText, len(remaining))
	}

	p.logger.Warn("Ignoring text after symbol table",
		log.String("file", opts.Input),
		log.Int("bytes", len(remaining)))
	return nil
}

// printInfo prints information about the decoded document.
func (p *Pipeline) printInfo(opts options.Program, tokens []kmd.Token, table *symbols.Table) {
	if opts.Quiet {
		return
	}

	var lines, instructions int
	for _, token := range tokens {
		line, ok := token.(kmd.Line)
		if !ok {
			continue
		}
		lines++
		if _, ok := line.Word.(kmd.Instruction); ok {
			instructions++
		}
	}

	p.logger.Info("Decoded KMD file",
		log.String("file", opts.Input),
		log.Int("lines", lines),
		log.Int("instructions", instructions),
		log.Int("labels", table.Len()),
		log.Int("exported", len(table.Exported())),
		log.Int("thumb", table.ThumbCount()),
	)
}
