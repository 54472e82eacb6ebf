package symbols

import (
	"testing"

	"github.com/retroenv/kmdparse/pkg/kmd"
	"github.com/retroenv/retrogolib/assert"
)

func testLabels() []kmd.Label {
	return []kmd.Label{
		{Name: "main", MemoryAddress: 0x00, IsExported: true},
		{Name: "hello", MemoryAddress: 0x0C},
		{Name: "entry", MemoryAddress: 0x20, IsExported: true, IsThumb: true},
		{Name: "loop", MemoryAddress: 0x0C},
		{Name: "hello", MemoryAddress: 0x30},
	}
}

//nolint:funlen // test functions can be long
func TestTable(t *testing.T) {
	t.Run("new table is initialized", func(t *testing.T) {
		table := New(nil)

		assert.NotNil(t, table)
		assert.Equal(t, 0, table.Len())
		assert.Empty(t, table.Exported())
		assert.Empty(t, table.Duplicates())
		assert.Equal(t, 0, table.ThumbCount())
	})

	t.Run("labels at address keep declaration order", func(t *testing.T) {
		table := New(testLabels())

		labels := table.AtAddress(0x0C)
		assert.Len(t, labels, 2)
		assert.Equal(t, "hello", labels[0].Name)
		assert.Equal(t, "loop", labels[1].Name)
		assert.Len(t, table.AtAddress(0x99), 0)
	})

	t.Run("exported names", func(t *testing.T) {
		table := New(testLabels())

		assert.Equal(t, []string{"entry", "main"}, table.Exported())
		assert.True(t, table.IsExported("main"))
		assert.False(t, table.IsExported("loop"))
	})

	t.Run("thumb addresses", func(t *testing.T) {
		table := New(testLabels())

		assert.True(t, table.IsThumb(0x20))
		assert.False(t, table.IsThumb(0x00))
		assert.Equal(t, 1, table.ThumbCount())
	})

	t.Run("duplicates", func(t *testing.T) {
		table := New(testLabels())

		assert.Equal(t, []string{"hello"}, table.Duplicates())
	})
}

func TestFromTokens(t *testing.T) {
	tokens := []kmd.Token{
		kmd.Tag{},
		kmd.Line{Comment: " main"},
		kmd.Label{Name: "main", IsExported: true},
		kmd.Label{Name: "loop", MemoryAddress: 4},
	}

	table := FromTokens(tokens)
	assert.Equal(t, 2, table.Len())
	assert.Len(t, table.AtAddress(0), 1)
	assert.Equal(t, "loop", table.AtAddress(4)[0].Name)
	assert.Equal(t, []string{"main"}, table.Exported())
}
