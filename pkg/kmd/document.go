package kmd

import "strings"

// Parse decodes a complete KMD document. It returns the tokens in input
// order, starting with the Tag, followed by the body lines and the labels of
// the symbol table, and the part of the input that follows the last label.
// The first malformed construct aborts decoding with a *ParseError.
func Parse(input string) ([]Token, string, error) {
	s := newScanner(input, 0)
	if err := s.header(); err != nil {
		return nil, "", err
	}

	var tokens []Token
	for !s.atBodyEnd() {
		token, err := s.line()
		if err != nil {
			return nil, "", err
		}
		tokens = append(tokens, token)
	}

	if err := s.labelsHeader(); err != nil {
		return nil, "", err
	}

	for s.atLabel() {
		label, err := s.label()
		if err != nil {
			return nil, "", err
		}
		tokens = append(tokens, label)
	}

	return tokens, s.rest(), nil
}

// header checks that the document starts with the KMD tag line, without
// consuming it. The tag is emitted by the first body line.
func (s *scanner) header() error {
	rest := s.rest()
	if strings.HasPrefix(rest, kmdTag+"\n") || strings.HasPrefix(rest, kmdTag+"\r\n") {
		return nil
	}
	return s.errorf(ErrMalformedTag, "'KMD' tag line")
}

// atBodyEnd returns whether the body lines end at the current position,
// which is the case for a blank line or the end of the input.
func (s *scanner) atBodyEnd() bool {
	return s.atEnd() || s.atEOL()
}

// labelsHeader consumes the blank line and the header of the label section.
func (s *scanner) labelsHeader() error {
	if !s.eol() {
		return s.errorf(ErrMissingSection, "blank line before symbol table")
	}
	if !s.literalLine(labelsSection) {
		return s.errorf(ErrMissingSection, "'"+labelsSection+"' section header")
	}
	return nil
}
