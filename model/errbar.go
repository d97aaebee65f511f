package model

import "github.com/docfusion/docfusion-tui/style"

// ErrorModel is the screen's single visible error slot. The latest failure
// overwrites any previous one; it stays up until the next successful
// primary action clears it. There is no auto-dismiss timer.
type ErrorModel struct {
	message string
}

// NewError returns an empty ErrorModel.
func NewError() ErrorModel {
	return ErrorModel{}
}

// Set overwrites the slot with a new failure message.
func (m *ErrorModel) Set(message string) {
	m.message = message
}

// Clear empties the slot after a successful action.
func (m *ErrorModel) Clear() {
	m.message = ""
}

// HasError reports whether the slot is occupied.
func (m ErrorModel) HasError() bool {
	return m.message != ""
}

// View renders the banner line, or "" when the slot is empty.
func (m ErrorModel) View() string {
	if m.message == "" {
		return ""
	}
	return style.ErrorBanner.Render("✘ " + m.message)
}
