// Package detector handles line ending style detection.
package detector

import (
	"strings"

	"github.com/retroenv/retrogolib/log"
)

// LineEnding is the line terminator style of a document.
type LineEnding string

// Line ending styles.
const (
	None  LineEnding = "none"
	LF    LineEnding = "lf"
	CRLF  LineEnding = "crlf"
	Mixed LineEnding = "mixed"
)

func (l LineEnding) String() string {
	return string(l)
}

// Detector handles line ending detection of loaded documents.
type Detector struct {
	logger *log.Logger
}

// New creates a new line ending detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the line ending style of the document. Both styles are
// accepted by the decoder, the result is informational.
func (d *Detector) Detect(fileName, text string) LineEnding {
	ending := detectFromText(text)
	d.logger.Debug("Detected line endings",
		log.Stringer("style", ending),
		log.String("file", fileName))
	return ending
}

// detectFromText counts the line terminators of the text.
func detectFromText(text string) LineEnding {
	lines := strings.Count(text, "\n")
	crlf := strings.Count(text, "\r\n")

	switch {
	case lines == 0:
		return None
	case crlf == 0:
		return LF
	case crlf == lines:
		return CRLF
	default:
		return Mixed
	}
}
