// Package symbols provides an index over the labels of a decoded symbol table.
package symbols

import (
	"sort"

	"github.com/retroenv/kmdparse/pkg/kmd"
	"github.com/retroenv/retrogolib/set"
)

// Table indexes labels by name and by address.
// Labels keep their declaration order, a name may be declared more than once.
type Table struct {
	labels []kmd.Label

	byName    map[string][]int
	byAddress map[uint32][]int
	exported  set.Set[string]
	thumb     set.Set[uint32]
	thumbs    int // number of Thumb labels
}

// New creates a new symbol table for the given labels.
func New(labels []kmd.Label) *Table {
	t := &Table{
		labels:    labels,
		byName:    make(map[string][]int),
		byAddress: make(map[uint32][]int),
		exported:  set.New[string](),
		thumb:     set.New[uint32](),
	}

	for i, label := range labels {
		t.byName[label.Name] = append(t.byName[label.Name], i)
		t.byAddress[label.MemoryAddress] = append(t.byAddress[label.MemoryAddress], i)
		if label.IsExported {
			t.exported.Add(label.Name)
		}
		if label.IsThumb {
			t.thumb.Add(label.MemoryAddress)
			t.thumbs++
		}
	}
	return t
}

// FromTokens creates a new symbol table for all labels of a token sequence.
func FromTokens(tokens []kmd.Token) *Table {
	var labels []kmd.Label
	for _, token := range tokens {
		if label, ok := token.(kmd.Label); ok {
			labels = append(labels, label)
		}
	}
	return New(labels)
}

// Len returns the number of labels in the table.
func (t *Table) Len() int {
	return len(t.labels)
}

// AtAddress returns all labels that point to the given address.
func (t *Table) AtAddress(address uint32) []kmd.Label {
	indexes := t.byAddress[address]
	labels := make([]kmd.Label, 0, len(indexes))
	for _, i := range indexes {
		labels = append(labels, t.labels[i])
	}
	return labels
}

// ThumbCount returns the number of labels marking Thumb code.
func (t *Table) ThumbCount() int {
	return t.thumbs
}

// IsExported returns whether any declaration of the name is global.
func (t *Table) IsExported(name string) bool {
	return t.exported.Contains(name)
}

// IsThumb returns whether a label marks the address as Thumb code.
func (t *Table) IsThumb(address uint32) bool {
	return t.thumb.Contains(address)
}

// Exported returns the sorted names of all global labels.
func (t *Table) Exported() []string {
	return t.namesMatching(t.IsExported)
}

// Duplicates returns the sorted names of all labels that are declared more than once.
func (t *Table) Duplicates() []string {
	return t.namesMatching(func(name string) bool {
		return len(t.byName[name]) > 1
	})
}

func (t *Table) namesMatching(fn func(name string) bool) []string {
	var names []string
	for name := range t.byName {
		if fn(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
