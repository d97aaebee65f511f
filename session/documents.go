package session

import "github.com/docfusion/docfusion-tui/client"

// Documents is the per-session document panel state. The set is always
// replaced wholesale from the server, never merged.
type Documents struct {
	docs []client.Document
}

func NewDocuments() *Documents {
	return &Documents{}
}

func (d *Documents) List() []client.Document {
	return d.docs
}

func (d *Documents) Len() int {
	return len(d.docs)
}

// Get returns the document at a 1-based position, matching how the panel
// numbers entries for /view.
func (d *Documents) Get(n int) (client.Document, bool) {
	if n < 1 || n > len(d.docs) {
		return client.Document{}, false
	}
	return d.docs[n-1], true
}

// Replace swaps in the server's document list for the session.
func (d *Documents) Replace(docs []client.Document) {
	d.docs = docs
}

// Clear empties the panel. Used when a brand-new session is created: it has
// no documents, so there is nothing to wait a round trip for.
func (d *Documents) Clear() {
	d.docs = nil
}
