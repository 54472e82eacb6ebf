// Package loader handles KMD file loading operations.
package loader

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

var errNotText = errors.New("file is not valid UTF-8 text")

// Loader handles loading KMD files from disk.
type Loader struct{}

// New creates a new file loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the complete input file into memory.
func (l *Loader) Load(fileName string) (string, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return "", fmt.Errorf("reading file %s: %w", fileName, err)
	}

	text, err := l.LoadFromBytes(data)
	if err != nil {
		return "", fmt.Errorf("loading file %s: %w", fileName, err)
	}
	return text, nil
}

// LoadFromBytes returns the buffer as text, the content is expected to be
// ASCII or UTF-8 encoded.
func (l *Loader) LoadFromBytes(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errNotText
	}
	return string(data), nil
}
