package kmd

import "strings"

const (
	labelPrefix   = ": "
	globalMarker  = "Global - "
	localMarker   = "Local -- " // the assembler writes two dashes for local labels
	thumbMarker   = "Thumb"
	armMarker     = "ARM"
	labelsSection = "Symbol Table: Labels"
)

// label parses a symbol table line in the fixed column format:
//
//	: <name> <address>  <Global - |Local -- ><ARM|Thumb>
func (s *scanner) label() (Label, error) {
	if !s.literal(labelPrefix) {
		return Label{}, s.errorf(ErrMalformedLabel, "': ' label prefix")
	}

	name := s.span(isAlpha)
	if name == "" {
		return Label{}, s.errorf(ErrMalformedLabel, "alphabetic label name")
	}

	s.skipBlank()
	address, err := s.hex()
	if err != nil {
		return Label{}, err
	}
	s.skipBlank()

	var exported bool
	switch {
	case s.literal(globalMarker):
		exported = true
	case s.literal(localMarker):
	default:
		return Label{}, s.errorf(ErrMalformedLabel, "'Global - ' or 'Local -- '")
	}

	var thumb bool
	switch {
	case s.literal(thumbMarker):
		thumb = true
	case s.literal(armMarker):
	default:
		return Label{}, s.errorf(ErrMalformedLabel, "'Thumb' or 'ARM'")
	}

	if !s.eol() {
		return Label{}, s.errorf(ErrMalformedLabel, "line terminator")
	}

	return Label{
		Name:          name,
		MemoryAddress: address,
		IsExported:    exported,
		IsThumb:       thumb,
	}, nil
}

// atLabel returns whether the next line is a label line.
func (s *scanner) atLabel() bool {
	return strings.HasPrefix(s.rest(), labelPrefix)
}
