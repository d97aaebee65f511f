package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512 B", FormatSize(512))
	assert.Equal(t, "1.0 KB", FormatSize(1024))
	assert.Equal(t, "1.5 KB", FormatSize(1536))
	assert.Equal(t, "2.0 MB", FormatSize(2<<20))
}

func TestDocsLinesForLayout(t *testing.T) {
	m := NewDocs()
	assert.Equal(t, 0, m.Lines())

	m.SetDocs([]DocEntry{{Filename: "a.pdf"}, {Filename: "b.pdf"}})
	assert.Equal(t, 3, m.Lines(), "two rows plus the title")

	m.SetDocs([]DocEntry{
		{Filename: "a.pdf"}, {Filename: "b.pdf"}, {Filename: "c.pdf"},
		{Filename: "d.pdf"}, {Filename: "e.pdf"}, {Filename: "f.pdf"},
	})
	assert.Equal(t, 5, m.Lines(), "capped at four rows plus the title")

	m.Clear()
	assert.Equal(t, 0, m.Lines())
}

func TestErrorSlotSemantics(t *testing.T) {
	e := NewError()
	assert.False(t, e.HasError())
	assert.Equal(t, "", e.View())

	e.Set("Chat failed")
	assert.True(t, e.HasError())
	assert.Contains(t, e.View(), "Chat failed")

	// The latest failure overwrites the previous one.
	e.Set("Upload failed")
	assert.NotContains(t, e.View(), "Chat failed")
	assert.Contains(t, e.View(), "Upload failed")

	e.Clear()
	assert.False(t, e.HasError())
}
