package model

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func press(m InputModel, keyType tea.KeyType) InputModel {
	updated, _ := m.Update(tea.KeyMsg{Type: keyType})
	return updated.(InputModel)
}

func TestInputHistoryNavigation(t *testing.T) {
	m := NewInput()
	m.Submit("first question")
	m.Submit("second question")

	m = press(m, tea.KeyUp)
	assert.Equal(t, "second question", m.Value())

	m = press(m, tea.KeyUp)
	assert.Equal(t, "first question", m.Value())

	// Past the oldest entry stays put.
	m = press(m, tea.KeyUp)
	assert.Equal(t, "first question", m.Value())

	m = press(m, tea.KeyDown)
	assert.Equal(t, "second question", m.Value())

	// Forward past the newest entry restores a blank field.
	m = press(m, tea.KeyDown)
	assert.Equal(t, "", m.Value())
}

func TestInputTabCyclesSlashCommands(t *testing.T) {
	m := NewInput()
	m.SetCommands([]string{"/docs", "/delete", "/upload"})
	m.SetValue("/d")

	m = press(m, tea.KeyTab)
	assert.Equal(t, "/docs", m.Value())

	m = press(m, tea.KeyTab)
	assert.Equal(t, "/delete", m.Value())

	// Wraps around.
	m = press(m, tea.KeyTab)
	assert.Equal(t, "/docs", m.Value())
}

func TestInputTabIgnoredForPlainText(t *testing.T) {
	m := NewInput()
	m.SetCommands([]string{"/docs"})
	m.SetValue("describe the figure")

	m = press(m, tea.KeyTab)
	assert.Equal(t, "describe the figure", m.Value())
}

func TestInputResetClearsBuffer(t *testing.T) {
	m := NewInput()
	m.SetValue("half-typed")
	m.Reset()
	assert.Equal(t, "", m.Value())
}
