package kmd

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds returned wrapped in a *ParseError.
var (
	ErrMalformedTag   = errors.New("malformed tag")
	ErrInvalidHex     = errors.New("invalid hex")
	ErrMalformedWord  = errors.New("malformed word")
	ErrMalformedLine  = errors.New("malformed line")
	ErrMalformedLabel = errors.New("malformed label")
	ErrMissingSection = errors.New("missing section")
)

// ErrInvalidWorkers is returned for a worker count below one.
var ErrInvalidWorkers = errors.New("worker count must be positive")

// ParseError describes the first failure encountered while decoding.
type ParseError struct {
	Kind     error  // one of the Err* kinds
	Offset   int    // byte offset into the input
	Line     int    // 1 based
	Column   int    // 1 based, in bytes
	Expected string // construct that was expected at the position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: expected %s: %s", e.Line, e.Column, e.Expected, e.Kind)
}

// Unwrap returns the error kind.
func (e *ParseError) Unwrap() error {
	return e.Kind
}

// newParseError creates an error for the given position in src.
func newParseError(src string, offset int, kind error, expected string) *ParseError {
	prefix := src[:offset]
	line := strings.Count(prefix, "\n") + 1
	column := offset - strings.LastIndexByte(prefix, '\n')

	return &ParseError{
		Kind:     kind,
		Offset:   offset,
		Line:     line,
		Column:   column,
		Expected: expected,
	}
}
