package model

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/docfusion/docfusion-tui/style"
)

// InputModel is the prompt bar. Up/Down walk previously submitted inputs,
// keeping the in-progress draft safe; Tab completes slash commands against
// the prefix that was typed when completion started.
type InputModel struct {
	ti textinput.Model

	history []string
	back    int    // entries back from the present; 0 = live buffer
	draft   string // buffer stashed while navigating history

	commands   []string
	candidates []string // commands matching the prefix Tab started from
	candidate  int
}

// NewInput returns a ready-to-use InputModel.
func NewInput() InputModel {
	ti := textinput.New()
	ti.Placeholder = "Ask anything about your documents, or type / for commands…"
	ti.CharLimit = 4096
	return InputModel{ti: ti}
}

// SetCommands replaces the command list used for Tab completion.
func (m *InputModel) SetCommands(cmds []string) {
	m.commands = cmds
}

// SetWidth constrains the input to the terminal width.
func (m *InputModel) SetWidth(w int) {
	m.ti.Width = w - 4
}

// Focus gives keyboard focus to the input.
func (m *InputModel) Focus() tea.Cmd {
	return m.ti.Focus()
}

// Blur removes keyboard focus from the input.
func (m *InputModel) Blur() {
	m.ti.Blur()
}

// Value returns the current raw text in the input field.
func (m InputModel) Value() string {
	return m.ti.Value()
}

// SetValue replaces the buffer content.
func (m *InputModel) SetValue(v string) {
	m.ti.SetValue(v)
	m.ti.CursorEnd()
}

// Reset clears the field and leaves history navigation at the present.
func (m *InputModel) Reset() {
	m.back = 0
	m.draft = ""
	m.ti.SetValue("")
	m.stopCompletion()
}

// Submit records text in history and clears the field.
func (m *InputModel) Submit(text string) {
	if text != "" {
		m.history = append(m.history, text)
	}
	m.Reset()
}

func (m *InputModel) stopCompletion() {
	m.candidates = nil
	m.candidate = 0
}

// Init starts the cursor blink.
func (m InputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update intercepts Up/Down for history and Tab for completion before
// delegating to the underlying textinput.
func (m InputModel) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := teaMsg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyUp:
			return m.recall(1), nil
		case tea.KeyDown:
			return m.recall(-1), nil
		case tea.KeyTab:
			return m.complete(), nil
		default:
			// Any other key invalidates the completion cycle.
			m.stopCompletion()
		}
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(teaMsg)
	return m, cmd
}

// View renders the prompt character followed by the textinput view.
func (m InputModel) View() string {
	return style.PromptChar.Render("❯ ") + m.ti.View()
}

// recall moves through history; delta +1 goes older, -1 newer. Leaving the
// live buffer stashes it as the draft, returning restores it.
func (m InputModel) recall(delta int) InputModel {
	if len(m.history) == 0 {
		return m
	}

	next := m.back + delta
	if next < 0 {
		next = 0
	}
	if next > len(m.history) {
		next = len(m.history)
	}
	if next == m.back {
		return m
	}

	if m.back == 0 {
		m.draft = m.ti.Value()
	}
	m.back = next

	if m.back == 0 {
		m.SetValue(m.draft)
	} else {
		m.SetValue(m.history[len(m.history)-m.back])
	}
	return m
}

// complete cycles through slash commands matching the typed prefix. The
// first Tab fixes the prefix; later Tabs rotate within its matches.
func (m InputModel) complete() InputModel {
	if m.candidates != nil {
		m.candidate = (m.candidate + 1) % len(m.candidates)
		m.SetValue(m.candidates[m.candidate])
		return m
	}

	seed := m.ti.Value()
	if !strings.HasPrefix(seed, "/") {
		return m
	}
	var matches []string
	for _, c := range m.commands {
		if strings.HasPrefix(c, seed) {
			matches = append(matches, c)
		}
	}
	if len(matches) == 0 {
		return m
	}
	m.candidates = matches
	m.candidate = 0
	m.SetValue(matches[0])
	return m
}
