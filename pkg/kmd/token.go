package kmd

// Token is a single decoded record of a KMD document.
// It is implemented by Tag, Line and Label.
type Token interface {
	token()
}

// Tag marks the KMD format header.
type Tag struct{}

// Line is a body record describing a memory location.
type Line struct {
	MemoryAddress *uint32 `json:"memory_address,omitempty"` // nil if the line has no address
	Word          Word    `json:"word,omitempty"`           // nil if the line has no word
	Comment       string  `json:"comment"`
}

// Label is a symbol table record.
type Label struct {
	Name          string `json:"name"`
	MemoryAddress uint32 `json:"memory_address"`
	IsExported    bool   `json:"is_exported"` // Global, otherwise Local
	IsThumb       bool   `json:"is_thumb"`    // Thumb, otherwise ARM
}

func (Tag) token()   {}
func (Line) token()  {}
func (Label) token() {}

// Address returns the memory address of the line and whether it is set.
func (l Line) Address() (uint32, bool) {
	if l.MemoryAddress == nil {
		return 0, false
	}
	return *l.MemoryAddress, true
}

// Mode returns the instruction set name the label targets.
func (l Label) Mode() string {
	if l.IsThumb {
		return "Thumb"
	}
	return "ARM"
}

// Visibility returns the visibility of the label as written by the assembler.
func (l Label) Visibility() string {
	if l.IsExported {
		return "Global"
	}
	return "Local"
}
