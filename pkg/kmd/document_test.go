package kmd

import (
	_ "embed"
	"errors"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

//go:embed testdata/hello.kmd
var helloKMD string

const (
	helloBodyTokens  = 15 // including the tag
	helloLabelTokens = 4
)

const minimalKMD = "KMD\n00000000: E28F0008 ; main\n\nSymbol Table: Labels\n"

var validDocuments = []struct {
	name      string
	input     string
	tokens    int
	remaining string
}{
	{name: "fixture", input: helloKMD, tokens: helloBodyTokens + helloLabelTokens},
	{name: "fixture crlf", input: strings.ReplaceAll(helloKMD, "\n", "\r\n"), tokens: helloBodyTokens + helloLabelTokens},
	{name: "fixture mixed line endings", input: strings.Replace(helloKMD, "\n", "\r\n", 5), tokens: helloBodyTokens + helloLabelTokens},
	{name: "minimal", input: minimalKMD, tokens: 2},
	{name: "tag only", input: "KMD\n\nSymbol Table: Labels\n", tokens: 1},
	{name: "trailing text", input: helloKMD + "not a label\n", tokens: helloBodyTokens + helloLabelTokens, remaining: "not a label\n"},
	{name: "trailing label without prefix", input: minimalKMD + "main 0 Global - ARM", tokens: 2, remaining: "main 0 Global - ARM"},
}

var invalidDocuments = []struct {
	name  string
	input string
	kind  error
	line  int
}{
	{name: "missing tag", input: "IGU\n00000000: 00 ; x\n\nSymbol Table: Labels\n", kind: ErrMalformedTag, line: 1},
	{name: "tag without terminator", input: "KMD", kind: ErrMalformedTag, line: 1},
	{name: "empty input", input: "", kind: ErrMalformedTag, line: 1},
	{name: "missing comment delimiter", input: "KMD\n00000000: 00 ; a\n00000001: 01 b\n\nSymbol Table: Labels\n", kind: ErrMalformedLine, line: 3},
	{name: "body line error before missing section", input: "KMD\n0: 00 a\n", kind: ErrMalformedLine, line: 2},
	{name: "invalid word", input: "KMD\n0: DEADBEEF00 ; a\n\nSymbol Table: Labels\n", kind: ErrMalformedWord, line: 2},
	{name: "end of input after body", input: "KMD\n00000000: 00 ; a\n", kind: ErrMissingSection, line: 3},
	{name: "wrong section header", input: "KMD\n00000000: 00 ; a\n\nSymbol Table: Lables\n", kind: ErrMissingSection, line: 4},
	{name: "section header without blank line", input: "KMD\n00000000: 00 ; a\nSymbol Table: Labels\n", kind: ErrMalformedLine, line: 3},
	{name: "malformed label", input: minimalKMD + ": main 0 Global - ARM\n: loop 4 Local - ARM\n", kind: ErrMalformedLabel, line: 6},
	{name: "label error after body error", input: "KMD\n0: 00 a\n\nSymbol Table: Labels\n: loop 4 Local - ARM\n", kind: ErrMalformedLine, line: 2},
}

func TestParse(t *testing.T) {
	for _, tt := range validDocuments {
		t.Run(tt.name, func(t *testing.T) {
			tokens, remaining, err := Parse(tt.input)
			assert.NoError(t, err)
			assert.Len(t, tokens, tt.tokens)
			assert.Equal(t, Token(Tag{}), tokens[0])
			assert.Equal(t, tt.remaining, remaining)
		})
	}
}

func TestParseFixtureOrder(t *testing.T) {
	tokens, remaining, err := Parse(helloKMD)
	assert.NoError(t, err)
	assert.Equal(t, "", remaining)
	assert.Len(t, tokens, helloBodyTokens+helloLabelTokens)

	assert.Equal(t, Token(Tag{}), tokens[0])
	assert.Equal(t, Token(Line{MemoryAddress: address(0), Comment: " "}), tokens[1])
	assert.Equal(t, Token(Line{
		MemoryAddress: address(0),
		Word:          Instruction{0x08, 0x00, 0x8F, 0xE2},
		Comment:       " main    ADR   R0, hello",
	}), tokens[3])
	assert.Equal(t, Token(Line{
		MemoryAddress: address(0x0C),
		Word:          Data{0x48, 0x65, 0x6C},
		Comment:       ` hello   DEFB  "Hello world\n",0`,
	}), tokens[6])
	assert.Equal(t, Token(Line{Comment: " end of program"}), tokens[14])

	for i := 1; i < helloBodyTokens; i++ {
		_, ok := tokens[i].(Line)
		assert.True(t, ok)
	}

	labels := tokens[helloBodyTokens:]
	assert.Equal(t, Token(Label{Name: "main", MemoryAddress: 0, IsExported: true}), labels[0])
	assert.Equal(t, Token(Label{Name: "hello", MemoryAddress: 0x0C}), labels[1])
	assert.Equal(t, Token(Label{Name: "buzz", MemoryAddress: 0x1C}), labels[2])
	assert.Equal(t, Token(Label{Name: "thumbentry", MemoryAddress: 0x20, IsExported: true, IsThumb: true}), labels[3])
}

func TestParseLineEndingIndependence(t *testing.T) {
	lf, _, err := Parse(helloKMD)
	assert.NoError(t, err)

	crlf, _, err := Parse(strings.ReplaceAll(helloKMD, "\n", "\r\n"))
	assert.NoError(t, err)

	assert.Equal(t, lf, crlf)
}

func TestParseInvalid(t *testing.T) {
	for _, tt := range invalidDocuments {
		t.Run(tt.name, func(t *testing.T) {
			tokens, remaining, err := Parse(tt.input)
			assert.Nil(t, tokens)
			assert.Equal(t, "", remaining)
			assert.True(t, errors.Is(err, tt.kind))

			var parseErr *ParseError
			assert.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tt.line, parseErr.Line)
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, _, err := Parse("KMD\n00000000: 00 a\n")
	assert.Error(t, err)
	assert.Equal(t, "line 2, column 14: expected ';' introducing comment: malformed line", err.Error())
}
