package model

import (
	"strings"

	"github.com/docfusion/docfusion-tui/style"
)

// HeaderModel renders the one-line header and the empty-conversation
// welcome screen.
type HeaderModel struct {
	version string
	backend string
	width   int
}

// NewHeader returns a HeaderModel for the given build version.
func NewHeader(version string) HeaderModel {
	return HeaderModel{version: version}
}

// SetBackend records the backend URL shown in the welcome screen.
func (m *HeaderModel) SetBackend(url string) {
	m.backend = url
}

// SetWidth constrains the header to the terminal width.
func (m *HeaderModel) SetWidth(w int) {
	m.width = w
}

// View renders the header line with a separator underneath.
func (m HeaderModel) View() string {
	title := style.HeaderTitle.Render(" ◈ DocFusion") +
		style.HeaderDetail.Render("  intelligent document assistant")
	w := m.width
	if w < 1 {
		w = 1
	}
	sep := style.Hint.Render(strings.Repeat("─", w))
	return title + "\n" + sep
}

// Welcome renders the text shown in the chat viewport before any messages.
func (m HeaderModel) Welcome() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(style.WelcomeTitle.Render("  Welcome to DocFusion"))
	sb.WriteString("\n\n")
	sb.WriteString(style.WelcomeMeta.Render("  Upload your PDFs and start asking questions."))
	sb.WriteString("\n\n")
	sb.WriteString(style.WelcomeTip.Render("  /upload <path> to add a document · /help for all commands"))
	if m.backend != "" {
		sb.WriteString("\n")
		sb.WriteString(style.WelcomeTip.Render("  backend: " + m.backend + " · " + m.version))
	}
	return sb.String()
}
