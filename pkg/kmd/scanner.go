package kmd

import "strings"

// scanner is a cursor over a resident input buffer. It only moves forward,
// alternatives inspect the input before committing to it.
type scanner struct {
	src string
	pos int
}

func newScanner(src string, pos int) *scanner {
	return &scanner{src: src, pos: pos}
}

func (s *scanner) rest() string {
	return s.src[s.pos:]
}

func (s *scanner) atEnd() bool {
	return s.pos >= len(s.src)
}

// errorf returns a parse error for the current position.
func (s *scanner) errorf(kind error, expected string) *ParseError {
	return newParseError(s.src, s.pos, kind, expected)
}

// errorAt returns a parse error for the given position.
func (s *scanner) errorAt(pos int, kind error, expected string) *ParseError {
	return newParseError(s.src, pos, kind, expected)
}

// literal consumes lit if the input continues with it.
func (s *scanner) literal(lit string) bool {
	if !strings.HasPrefix(s.rest(), lit) {
		return false
	}
	s.pos += len(lit)
	return true
}

// eol consumes a LF or CRLF line terminator.
func (s *scanner) eol() bool {
	return s.literal("\r\n") || s.literal("\n")
}

// atEOL returns whether the input continues with a line terminator.
func (s *scanner) atEOL() bool {
	rest := s.rest()
	return strings.HasPrefix(rest, "\n") || strings.HasPrefix(rest, "\r\n")
}

// literalLine consumes lit followed by a line terminator.
func (s *scanner) literalLine(lit string) bool {
	start := s.pos
	if s.literal(lit) && s.eol() {
		return true
	}
	s.pos = start
	return false
}

// span consumes the longest prefix of bytes matching fn and returns it.
func (s *scanner) span(fn func(c byte) bool) string {
	start := s.pos
	for s.pos < len(s.src) && fn(s.src[s.pos]) {
		s.pos++
	}
	return s.src[start:s.pos]
}

// skipBlank skips horizontal whitespace.
func (s *scanner) skipBlank() {
	s.span(isBlank)
}

// peek returns the next byte or 0 at the end of the input.
func (s *scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.pos]
}

const asciiSpace = " \t\n\v\f\r"

func isSpace(c byte) bool {
	return strings.IndexByte(asciiSpace, c) >= 0
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		return true
	default:
		return false
	}
}

// isHexSpan matches the lexical class of hex fields: hex digits and spaces.
func isHexSpan(c byte) bool {
	return isHexDigit(c) || c == ' '
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isLineEnd(c byte) bool {
	return c == '\r' || c == '\n'
}
