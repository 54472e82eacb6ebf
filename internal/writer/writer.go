// Package writer implements the output formats of decoded KMD records.
package writer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/retroenv/kmdparse/internal/options"
	"github.com/retroenv/kmdparse/internal/symbols"
	"github.com/retroenv/kmdparse/pkg/kmd"
)

// Writer writes decoded tokens in one of the supported output formats.
type Writer struct {
	options Options
	writer  io.Writer
}

// Options of the writer.
type Options struct {
	Format  string         // one of the options.Format* values
	Symbols *symbols.Table // optional, annotates text lines with their labels
}

// New creates a new writer.
func New(writer io.Writer, options Options) *Writer {
	return &Writer{
		options: options,
		writer:  writer,
	}
}

// Write writes all tokens.
func (w Writer) Write(tokens []kmd.Token) error {
	switch w.options.Format {
	case options.FormatText, "":
		return w.writeText(tokens)
	case options.FormatJSON:
		return w.writeJSON(tokens)
	case options.FormatDump:
		return w.writeDump(tokens)
	default:
		return fmt.Errorf("unsupported format '%s'", w.options.Format)
	}
}

func (w Writer) writeText(tokens []kmd.Token) error {
	for _, token := range tokens {
		if _, err := fmt.Fprintln(w.writer, w.formatToken(token)); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	return nil
}

// formatToken returns the single line text representation of a token.
func (w Writer) formatToken(token kmd.Token) string {
	switch t := token.(type) {
	case kmd.Tag:
		return "tag KMD"

	case kmd.Line:
		value, ok := t.Address()
		if !ok {
			return fmt.Sprintf("line -------- %s ;%s", formatWord(t.Word), t.Comment)
		}
		return fmt.Sprintf("line %08X %s%s ;%s", value, w.labelsAt(value), formatWord(t.Word), t.Comment)

	case kmd.Label:
		return fmt.Sprintf("label %s %08X %s %s", t.Name, t.MemoryAddress,
			strings.ToLower(t.Visibility()), strings.ToLower(t.Mode()))

	default:
		return fmt.Sprintf("unknown %v", token)
	}
}

// labelsAt returns the annotation for the labels pointing to the address,
// for example "[hello,loop arm] ".
func (w Writer) labelsAt(address uint32) string {
	if w.options.Symbols == nil {
		return ""
	}
	labels := w.options.Symbols.AtAddress(address)
	if len(labels) == 0 {
		return ""
	}

	names := make([]string, 0, len(labels))
	for _, label := range labels {
		names = append(names, label.Name)
	}
	mode := "arm"
	if w.options.Symbols.IsThumb(address) {
		mode = "thumb"
	}
	return fmt.Sprintf("[%s %s] ", strings.Join(names, ","), mode)
}

func formatWord(word kmd.Word) string {
	switch w := word.(type) {
	case kmd.Instruction:
		return fmt.Sprintf("ins %08X", w.Uint32())
	case kmd.Data:
		if len(w) == 0 {
			return "data"
		}
		return "data " + w.String()
	default:
		return "none"
	}
}

type jsonTag struct {
	Type string `json:"type"`
}

type jsonLine struct {
	Type string `json:"type"`
	kmd.Line
}

type jsonLabel struct {
	Type string `json:"type"`
	kmd.Label
}

func (w Writer) writeJSON(tokens []kmd.Token) error {
	records := make([]any, 0, len(tokens))
	for _, token := range tokens {
		switch t := token.(type) {
		case kmd.Tag:
			records = append(records, jsonTag{Type: "tag"})
		case kmd.Line:
			records = append(records, jsonLine{Type: "line", Line: t})
		case kmd.Label:
			records = append(records, jsonLabel{Type: "label", Label: t})
		}
	}

	encoder := json.NewEncoder(w.writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

func (w Writer) writeDump(tokens []kmd.Token) error {
	printer := pp.New()
	printer.SetColoringEnabled(false)
	if _, err := printer.Fprintln(w.writer, tokens); err != nil {
		return fmt.Errorf("writing dump: %w", err)
	}
	return nil
}
