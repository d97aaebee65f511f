package model

import (
	"fmt"
	"strings"

	"github.com/docfusion/docfusion-tui/style"
)

// DocEntry is a single row of the documents panel.
type DocEntry struct {
	ID       string
	Filename string
	Size     int64
}

// DocsModel renders the per-session document panel. Its content is always
// replaced wholesale from the server, never merged.
type DocsModel struct {
	docs     []DocEntry
	width    int
	maxLines int
}

// NewDocs returns an empty panel.
func NewDocs() DocsModel {
	return DocsModel{maxLines: 4}
}

// SetDocs replaces the panel content.
func (m *DocsModel) SetDocs(docs []DocEntry) {
	m.docs = docs
}

// Clear empties the panel.
func (m *DocsModel) Clear() {
	m.docs = nil
}

// Count returns the number of documents shown.
func (m DocsModel) Count() int {
	return len(m.docs)
}

// SetWidth constrains the panel to the terminal width.
func (m *DocsModel) SetWidth(w int) {
	m.width = w
}

// Lines returns how many terminal lines View occupies, for layout math.
func (m DocsModel) Lines() int {
	if len(m.docs) == 0 {
		return 0
	}
	n := len(m.docs)
	if n > m.maxLines {
		n = m.maxLines
	}
	return n + 1 // title line
}

// View renders the panel, numbered so /view <n> can reference entries.
func (m DocsModel) View() string {
	if len(m.docs) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(style.PanelTitle.Render(fmt.Sprintf(" Documents (%d)", len(m.docs))))
	shown := m.docs
	overflow := 0
	if len(shown) > m.maxLines {
		overflow = len(shown) - m.maxLines
		shown = shown[:m.maxLines]
	}
	for i, d := range shown {
		sb.WriteString("\n")
		line := fmt.Sprintf("  %d. %s %s", i+1,
			style.DocName.Render(d.Filename),
			style.DocMeta.Render("("+FormatSize(d.Size)+")"))
		if overflow > 0 && i == len(shown)-1 {
			line += style.DocMeta.Render(fmt.Sprintf("  +%d more", overflow))
		}
		sb.WriteString(line)
	}
	return sb.String()
}

// FormatSize renders a byte count the way the document panel shows it.
func FormatSize(size int64) string {
	switch {
	case size >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(size)/float64(1<<20))
	case size >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(size)/float64(1<<10))
	default:
		return fmt.Sprintf("%d B", size)
	}
}
