package kmd

import (
	"errors"
	"strconv"
	"strings"
)

// ScanHex scans a run of hex digits that may be interleaved with spaces at
// the start of input and returns its value and the remaining input.
// The run must contain at least one digit and fit into 32 bits.
func ScanHex(input string) (uint32, string, error) {
	s := newScanner(input, 0)
	value, err := s.hex()
	if err != nil {
		return 0, input, err
	}
	return value, s.rest(), nil
}

// hex scans a hex value. The cursor is not moved on failure.
func (s *scanner) hex() (uint32, error) {
	start := s.pos
	text := s.span(isHexSpan)

	value, ok := hexToUint32(text)
	if !ok {
		s.pos = start
		return 0, s.errorf(ErrInvalidHex, "32 bit hex value")
	}
	return value, nil
}

func hexToUint32(text string) (uint32, bool) {
	digits := strings.ReplaceAll(text, " ", "")
	if digits == "" {
		return 0, false
	}
	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, false
	}
	return uint32(value), true
}

// DecodeWord decodes the hex text of a word field. Text that contains 8
// consecutive characters without whitespace is an instruction, anything else
// is a sequence of data bytes. Instruction bytes are reversed into natural order.
func DecodeWord(text string) (Word, error) {
	w, offset, err := decodeWord(text)
	if err != nil {
		return nil, newParseError(text, offset, err, expectedWord(err))
	}
	return w, nil
}

// decodeWord returns the decoded word or the error kind and the offset
// into text at which decoding failed.
func decodeWord(text string) (Word, int, error) {
	text = strings.TrimRight(text, asciiSpace)

	b, offset, err := decodeBytes(text)
	if err != nil {
		return nil, offset, err
	}

	if !isInstruction(text) {
		return Data(b), 0, nil
	}
	if len(b) != instructionSize {
		return nil, 0, ErrMalformedWord
	}

	var ins Instruction
	for i := range b {
		ins[instructionSize-1-i] = b[i]
	}
	return ins, 0, nil
}

// isInstruction returns whether any window of 8 characters of text
// contains no whitespace.
func isInstruction(text string) bool {
	const window = 2 * instructionSize

	run := 0
	for i := 0; i < len(text); i++ {
		if isSpace(text[i]) {
			run = 0
			continue
		}
		run++
		if run >= window {
			return true
		}
	}
	return false
}

// decodeBytes decodes pairs of hex digits after removing all whitespace.
func decodeBytes(text string) ([]byte, int, error) {
	digits := make([]byte, 0, len(text))
	positions := make([]int, 0, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if isSpace(c) {
			continue
		}
		digits = append(digits, c)
		positions = append(positions, i)
	}

	if len(digits)%2 != 0 {
		return nil, positions[len(positions)-1], ErrInvalidHex
	}

	b := make([]byte, 0, len(digits)/2)
	for i := 0; i < len(digits); i += 2 {
		value, err := strconv.ParseUint(string(digits[i:i+2]), 16, 8)
		if err != nil {
			return nil, positions[i], ErrInvalidHex
		}
		b = append(b, byte(value))
	}
	return b, 0, nil
}

func expectedWord(kind error) string {
	if errors.Is(kind, ErrMalformedWord) {
		return "4 byte instruction"
	}
	return "pairs of hex digits"
}

// ScanComment returns everything up to the next line terminator and the
// remaining input, starting with the terminator.
func ScanComment(input string) (string, string) {
	s := newScanner(input, 0)
	comment := s.comment()
	return comment, s.rest()
}

func (s *scanner) comment() string {
	return s.span(func(c byte) bool { return !isLineEnd(c) })
}
