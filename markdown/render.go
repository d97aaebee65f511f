// Package markdown renders assistant replies for the terminal. Answers
// come back from the backend as markdown; anything the renderer cannot
// handle passes through as plain text.
package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

const wrapWidth = 96

var (
	once     sync.Once
	renderer *glamour.TermRenderer
)

func get() *glamour.TermRenderer {
	once.Do(func() {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wrapWidth),
		)
		if err == nil {
			renderer = r
		}
	})
	return renderer
}

// Render converts an assistant reply to styled ANSI output.
func Render(text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}
	r := get()
	if r == nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	// glamour pads with trailing newlines; the chat view manages spacing.
	return strings.TrimRight(out, "\n")
}
