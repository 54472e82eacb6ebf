package kmd

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// lineJob is a single line of the input that gets decoded by a worker.
type lineJob struct {
	start int
	end   int // offset after the line terminator
	label bool
}

// ParseParallel decodes a complete KMD document like Parse, but decodes the
// body and label lines concurrently using up to workers goroutines.
// Tokens, remaining input and errors are identical to the ones returned by Parse.
func ParseParallel(ctx context.Context, input string, workers int) ([]Token, string, error) {
	if workers < 1 {
		return nil, "", fmt.Errorf("%w: %d", ErrInvalidWorkers, workers)
	}
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	s := newScanner(input, 0)
	if err := s.header(); err != nil {
		return nil, "", err
	}

	var jobs []lineJob
	for !s.atBodyEnd() {
		jobs = append(jobs, s.nextLine(false))
	}
	bodyCount := len(jobs)

	sectionErr := s.labelsHeader()
	if sectionErr == nil {
		for s.atLabel() {
			jobs = append(jobs, s.nextLine(true))
		}
	}

	tokens, errs, err := decodeLines(ctx, input, jobs, workers)
	if err != nil {
		return nil, "", err
	}

	// report the error that a sequential decoding would have hit first
	for i := 0; i < bodyCount; i++ {
		if errs[i] != nil {
			return nil, "", errs[i]
		}
	}
	if sectionErr != nil {
		return nil, "", sectionErr
	}
	for i := bodyCount; i < len(jobs); i++ {
		if errs[i] != nil {
			return nil, "", errs[i]
		}
	}

	return tokens, s.rest(), nil
}

// nextLine returns the job for the line at the cursor and moves the cursor
// behind the line terminator.
func (s *scanner) nextLine(label bool) lineJob {
	start := s.pos
	idx := strings.IndexByte(s.rest(), '\n')
	if idx < 0 {
		s.pos = len(s.src)
	} else {
		s.pos += idx + 1
	}
	return lineJob{start: start, end: s.pos, label: label}
}

// decodeLines decodes all jobs concurrently. Decoding errors are returned per
// job, the returned error is only set if the context got cancelled.
func decodeLines(ctx context.Context, input string, jobs []lineJob,
	workers int) ([]Token, []error, error) {

	tokens := make([]Token, len(jobs))
	errs := make([]error, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tokens[i], errs[i] = decodeLine(input, jobs[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("decoding lines: %w", err)
	}
	return tokens, errs, nil
}

// decodeLine decodes a single line. The scanner sees the input only up to
// the end of the line, error positions are relative to the full input.
func decodeLine(input string, job lineJob) (Token, error) {
	s := newScanner(input[:job.end], job.start)

	var token Token
	var err error
	if job.label {
		token, err = s.label()
	} else {
		token, err = s.line()
	}
	if err != nil {
		return nil, err
	}

	if s.pos != job.end {
		return nil, s.errorf(ErrMalformedLine, "line terminator")
	}
	return token, nil
}
