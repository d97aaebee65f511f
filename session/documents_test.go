package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docfusion/docfusion-tui/client"
)

func TestDocumentsReplaceWholesale(t *testing.T) {
	d := NewDocuments()
	d.Replace([]client.Document{
		{ID: "1", Filename: "a.pdf", Size: 100},
		{ID: "2", Filename: "b.pdf", Size: 200},
	})

	// A shorter server list shrinks the set; nothing is merged.
	d.Replace([]client.Document{{ID: "3", Filename: "c.pdf", Size: 300}})

	assert.Equal(t, 1, d.Len())
	assert.Equal(t, "c.pdf", d.List()[0].Filename)
}

func TestDocumentsGetIsOneBased(t *testing.T) {
	d := NewDocuments()
	d.Replace([]client.Document{
		{ID: "1", Filename: "a.pdf"},
		{ID: "2", Filename: "b.pdf"},
	})

	doc, ok := d.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "a.pdf", doc.Filename)

	doc, ok = d.Get(2)
	assert.True(t, ok)
	assert.Equal(t, "b.pdf", doc.Filename)

	_, ok = d.Get(0)
	assert.False(t, ok)
	_, ok = d.Get(3)
	assert.False(t, ok)
}

func TestDocumentsClear(t *testing.T) {
	d := NewDocuments()
	d.Replace([]client.Document{{ID: "1", Filename: "a.pdf"}})
	d.Clear()
	assert.Equal(t, 0, d.Len())
	assert.Empty(t, d.List())
}
