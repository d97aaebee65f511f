package model

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/docfusion/docfusion-tui/style"
)

// StatusModel renders the bottom status line: active session, document
// count, signed-in user, a spinner while an answer is pending, and the
// upload progress bar while a transfer runs.
type StatusModel struct {
	session    string
	docCount   int
	email      string
	thinking   bool
	uploading  bool
	uploadName string
	uploadPct  float64

	spin spinner.Model
	bar  progress.Model
}

// NewStatus returns a zero-value StatusModel.
func NewStatus() StatusModel {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = style.SpinnerStyle
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 24
	return StatusModel{spin: sp, bar: bar}
}

// SetSession updates the active session shown.
func (m *StatusModel) SetSession(name string) {
	m.session = name
}

// SetDocCount updates the document count shown.
func (m *StatusModel) SetDocCount(n int) {
	m.docCount = n
}

// SetUser updates the signed-in user email.
func (m *StatusModel) SetUser(email string) {
	m.email = email
}

// StartThinking shows the spinner and returns the cmd that animates it.
func (m *StatusModel) StartThinking() tea.Cmd {
	m.thinking = true
	return m.spin.Tick
}

// StopThinking hides the spinner.
func (m *StatusModel) StopThinking() {
	m.thinking = false
}

// Thinking reports whether an answer is pending.
func (m StatusModel) Thinking() bool {
	return m.thinking
}

// SetUpload shows the progress bar for fileName at pct (0.0–1.0).
func (m *StatusModel) SetUpload(fileName string, pct float64) {
	m.uploading = true
	m.uploadName = fileName
	m.uploadPct = pct
}

// ClearUpload hides the progress bar.
func (m *StatusModel) ClearUpload() {
	m.uploading = false
	m.uploadName = ""
	m.uploadPct = 0
}

// Update advances the spinner animation. Forward spinner.TickMsg here.
func (m StatusModel) Update(msg tea.Msg) (StatusModel, tea.Cmd) {
	if !m.thinking {
		return m, nil
	}
	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	return m, cmd
}

// View renders the status line.
func (m StatusModel) View() string {
	var parts []string
	if m.session != "" {
		parts = append(parts, style.StatusSession.Render(m.session))
		parts = append(parts, fmt.Sprintf("%d docs", m.docCount))
	}
	if m.email != "" {
		parts = append(parts, m.email)
	}
	if m.thinking {
		parts = append(parts, m.spin.View()+" thinking")
	}
	if m.uploading {
		parts = append(parts, fmt.Sprintf("↑ %s %s %d%%",
			m.uploadName, m.bar.ViewAs(m.uploadPct), int(m.uploadPct*100)))
	}
	if len(parts) == 0 {
		return style.StatusBar.Render("not connected")
	}
	return style.StatusBar.Render(strings.Join(parts, " · "))
}
