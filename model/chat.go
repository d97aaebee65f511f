package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/docfusion/docfusion-tui/markdown"
	"github.com/docfusion/docfusion-tui/style"
)

// Source mirrors client.Source so this package stays free of client
// imports (client carries wire types; model carries display state).
type Source struct {
	Filename string
	Page     *int
	Snippet  string
}

// messageRole identifies who sent a message.
type messageRole int

const (
	roleUser messageRole = iota
	roleAssistant
	roleSystem
	roleErr
)

// ChatMessage is a single entry in the conversation history.
type ChatMessage struct {
	Role      messageRole
	Content   string
	Sources   []Source
	Timestamp time.Time
}

// UserMessage builds a user-role entry. Used when replacing history.
func UserMessage(text string) ChatMessage {
	return ChatMessage{Role: roleUser, Content: text, Timestamp: time.Now()}
}

// AssistantMessage builds an assistant-role entry with its sources.
func AssistantMessage(text string, sources []Source) ChatMessage {
	return ChatMessage{Role: roleAssistant, Content: text, Sources: sources, Timestamp: time.Now()}
}

// ChatModel is a scrollable viewport displaying the conversation of the
// active session.
type ChatModel struct {
	vp       viewport.Model
	messages []ChatMessage
	typing   bool
	width    int
	height   int
	welcome  string
}

// NewChat constructs a ChatModel sized to width x height.
func NewChat(width, height int) ChatModel {
	vp := viewport.New(width, height)
	vp.SetContent("")
	return ChatModel{
		vp:     vp,
		width:  width,
		height: height,
	}
}

// AddUserMessage appends a user-role message and scrolls to the bottom.
func (m *ChatModel) AddUserMessage(text string) {
	m.messages = append(m.messages, UserMessage(text))
	m.refresh()
}

// AddAssistantMessage appends an assistant reply with optional sources.
func (m *ChatModel) AddAssistantMessage(text string, sources []Source) {
	m.messages = append(m.messages, AssistantMessage(text, sources))
	m.refresh()
}

// AddSystemMessage appends a dimmed system-role message.
func (m *ChatModel) AddSystemMessage(text string) {
	m.messages = append(m.messages, ChatMessage{Role: roleSystem, Content: text, Timestamp: time.Now()})
	m.refresh()
}

// AddSystemError appends a red error-role message.
func (m *ChatModel) AddSystemError(text string) {
	m.messages = append(m.messages, ChatMessage{Role: roleErr, Content: text, Timestamp: time.Now()})
	m.refresh()
}

// SetMessages replaces the whole history, e.g. after a session switch.
func (m *ChatModel) SetMessages(messages []ChatMessage) {
	m.messages = messages
	m.refresh()
}

// SetTyping toggles the thinking indicator below the last message.
func (m *ChatModel) SetTyping(on bool) {
	m.typing = on
	m.refresh()
}

// SetWelcome sets the text shown while the conversation is empty.
func (m *ChatModel) SetWelcome(text string) {
	m.welcome = text
	m.refresh()
}

// SetSize resizes the underlying viewport.
func (m *ChatModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.vp.Width = width
	m.vp.Height = height
	m.refresh()
}

// ScrollToTop jumps the viewport to the oldest message.
func (m *ChatModel) ScrollToTop() {
	m.vp.GotoTop()
}

// ScrollToBottom jumps the viewport to the newest message.
func (m *ChatModel) ScrollToBottom() {
	m.vp.GotoBottom()
}

// Init satisfies tea.Model.
func (m ChatModel) Init() tea.Cmd {
	return nil
}

// Update forwards keyboard and mouse events to the viewport.
// It satisfies tea.Model so callers can type-assert the return value.
func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// View returns the rendered viewport content.
func (m ChatModel) View() string {
	return m.vp.View()
}

// refresh re-renders all messages into the viewport and scrolls to the bottom.
func (m *ChatModel) refresh() {
	m.vp.SetContent(m.renderAll())
	m.vp.GotoBottom()
}

// renderAll builds the full string of all rendered messages.
func (m *ChatModel) renderAll() string {
	if len(m.messages) == 0 && !m.typing {
		if m.welcome != "" {
			return m.welcome
		}
		return style.Faint.Render("  Upload a PDF and start asking questions.")
	}

	var sb strings.Builder
	for i, msg := range m.messages {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(renderMessage(msg))
	}
	if m.typing {
		if len(m.messages) > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(style.Faint.Render("◈ DocFusion is thinking…"))
	}
	return sb.String()
}

// renderMessage converts a single ChatMessage to a display string.
func renderMessage(msg ChatMessage) string {
	switch msg.Role {
	case roleUser:
		return style.UserLabel.Render("❯ You") + "\n" + msg.Content

	case roleAssistant:
		out := style.AssistantLabel.Render("◈ DocFusion") + "\n" + markdown.Render(msg.Content)
		if len(msg.Sources) > 0 {
			out += "\n" + renderSources(msg.Sources)
		}
		return out

	case roleSystem:
		return style.Faint.Render(msg.Content)

	case roleErr:
		return style.ErrorText.Render(msg.Content)

	default:
		return msg.Content
	}
}

// renderSources lists the retrieved passages backing an answer.
func renderSources(sources []Source) string {
	var sb strings.Builder
	for i, src := range sources {
		if i > 0 {
			sb.WriteString("\n")
		}
		line := "  ⎿ " + src.Filename
		if src.Page != nil {
			line += fmt.Sprintf(" · p.%d", *src.Page)
		}
		if src.Snippet != "" {
			line += " — " + truncateSnippet(src.Snippet, 60)
		}
		sb.WriteString(style.SourceText.Render(line))
	}
	return sb.String()
}

func truncateSnippet(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
