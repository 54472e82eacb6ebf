package kmd

import "strings"

const kmdTag = "KMD"

// line parses a single body line, which is either the KMD tag or a record
// of an optional address, an optional word and a comment.
func (s *scanner) line() (Token, error) {
	if s.literalLine(kmdTag) {
		return Tag{}, nil
	}

	address, err := s.lineAddress()
	if err != nil {
		return nil, err
	}

	s.skipBlank()
	word, err := s.lineWord()
	if err != nil {
		return nil, err
	}

	s.skipBlank()
	if !s.literal(";") {
		return nil, s.errorf(ErrMalformedLine, "';' introducing comment")
	}
	comment := s.comment()
	if !s.eol() {
		return nil, s.errorf(ErrMalformedLine, "line terminator")
	}

	return Line{
		MemoryAddress: address,
		Word:          word,
		Comment:       comment,
	}, nil
}

// lineAddress scans a hex span that is terminated by a colon. A span that
// is not followed by a colon is left to be read as word, a colon without
// digits in front of it marks a line without address.
func (s *scanner) lineAddress() (*uint32, error) {
	start := s.pos
	text := s.span(isHexSpan)
	if s.peek() != ':' {
		s.pos = start
		return nil, nil
	}
	if strings.TrimSpace(text) == "" {
		s.literal(":")
		return nil, nil
	}

	s.pos = start
	address, err := s.hex()
	if err != nil {
		return nil, err
	}
	s.literal(":")
	return &address, nil
}

// lineWord scans and decodes the word field, nil is returned for an empty field.
func (s *scanner) lineWord() (Word, error) {
	start := s.pos
	text := s.span(isHexSpan)
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	word, offset, err := decodeWord(text)
	if err != nil {
		return nil, s.errorAt(start+offset, err, expectedWord(err))
	}
	return word, nil
}
