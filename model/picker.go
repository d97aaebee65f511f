package model

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/docfusion/docfusion-tui/style"
)

// SessionItem is a single entry in the session picker.
type SessionItem struct {
	Name   string
	Active bool
}

// PickerChoice is emitted when the user selects a session.
type PickerChoice struct {
	Name string
}

// PickerDelete is emitted when the user asks to delete the highlighted
// session.
type PickerDelete struct {
	Name string
}

// PickerCancel is emitted when the user presses Esc.
type PickerCancel struct{}

// PickerModel renders a vertical list of sessions with arrow-key
// navigation. Enter switches, d deletes, Esc closes.
type PickerModel struct {
	items    []SessionItem
	cursor   int
	active   bool
	width    int
	offset   int // scroll offset for long lists
	pageSize int // visible items per page
}

// NewPicker returns a zero-value PickerModel.
func NewPicker() PickerModel {
	return PickerModel{pageSize: 12}
}

// SetItems populates the picker and activates it.
func (m *PickerModel) SetItems(items []SessionItem) {
	m.items = items
	m.cursor = 0
	m.offset = 0
	m.active = true
	// Start cursor on the active session
	for i, item := range items {
		if item.Active {
			m.cursor = i
			if m.cursor >= m.pageSize {
				m.offset = m.cursor - m.pageSize/2
				if m.offset+m.pageSize > len(m.items) {
					m.offset = len(m.items) - m.pageSize
				}
				if m.offset < 0 {
					m.offset = 0
				}
			}
			break
		}
	}
}

// Clear deactivates the picker.
func (m *PickerModel) Clear() {
	m.active = false
	m.items = nil
	m.cursor = 0
	m.offset = 0
}

// IsActive reports whether the picker is currently visible.
func (m PickerModel) IsActive() bool {
	return m.active
}

// SetWidth constrains the picker to the terminal width.
func (m *PickerModel) SetWidth(w int) {
	m.width = w
}

// Init satisfies tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles keyboard input when the picker is active.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.active || len(m.items) == 0 {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			if m.cursor < m.offset {
				m.offset = m.cursor
			}
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
			if m.cursor >= m.offset+m.pageSize {
				m.offset = m.cursor - m.pageSize + 1
			}
		}
	case "enter":
		choice := m.items[m.cursor]
		m.Clear()
		return m, func() tea.Msg { return PickerChoice{Name: choice.Name} }
	case "d":
		target := m.items[m.cursor]
		m.Clear()
		return m, func() tea.Msg { return PickerDelete{Name: target.Name} }
	case "esc":
		m.Clear()
		return m, func() tea.Msg { return PickerCancel{} }
	}
	return m, nil
}

// View renders the session list inside a rounded border.
func (m PickerModel) View() string {
	if !m.active {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(style.PanelTitle.Render("Sessions"))
	sb.WriteString("\n")

	end := m.offset + m.pageSize
	if end > len(m.items) {
		end = len(m.items)
	}
	for i := m.offset; i < end; i++ {
		item := m.items[i]
		marker := "  "
		if item.Active {
			marker = "● "
		}
		line := fmt.Sprintf("%s%s", marker, item.Name)
		if i == m.cursor {
			sb.WriteString(style.PickerSelected.Render("▶ " + line))
		} else {
			sb.WriteString(style.PickerUnselected.Render("  " + line))
		}
		sb.WriteString("\n")
	}
	if end < len(m.items) {
		sb.WriteString(style.Faint.Render(fmt.Sprintf("  … %d more", len(m.items)-end)))
		sb.WriteString("\n")
	}
	sb.WriteString(style.Hint.Render("enter switch · d delete · esc close"))
	return style.PickerBorder.Render(sb.String())
}
