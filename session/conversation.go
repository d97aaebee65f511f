package session

import (
	"strings"

	"github.com/docfusion/docfusion-tui/client"
)

// SendState tracks one send operation through its lifecycle.
type SendState int

const (
	SendIdle SendState = iota
	SendSending
	SendSettled
	SendFailed
)

// Conversation owns the message history shown for the active session.
//
// The user turn is appended before the request is dispatched and is never
// removed, even when the request fails; the assistant turn is appended only
// after a successful response.
type Conversation struct {
	messages []client.Message
	state    SendState
}

func NewConversation() *Conversation {
	return &Conversation{}
}

func (c *Conversation) Messages() []client.Message {
	return c.messages
}

func (c *Conversation) Len() int {
	return len(c.messages)
}

func (c *Conversation) State() SendState {
	return c.state
}

// Replace swaps in a session's full history, wholesale.
func (c *Conversation) Replace(messages []client.Message) {
	c.messages = messages
	c.state = SendIdle
}

func (c *Conversation) Clear() {
	c.messages = nil
	c.state = SendIdle
}

// Prepare validates raw input for sending. Whitespace-only input is
// rejected client-side and never reaches the network.
func (c *Conversation) Prepare(raw string) (string, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", false
	}
	return text, true
}

// AppendUser records the optimistic user turn and enters Sending. It
// returns the history as it stood before the turn, which feeds the
// auto-naming suggestion window.
func (c *Conversation) AppendUser(text string) []client.Message {
	prior := c.messages
	c.messages = append(c.messages, client.Message{Role: "user", Content: text})
	c.state = SendSending
	return prior
}

// ApplyAnswer appends the assistant turn after a successful response.
func (c *Conversation) ApplyAnswer(answer string, sources []client.Source) {
	c.messages = append(c.messages, client.Message{Role: "assistant", Content: answer, Sources: sources})
	c.state = SendSettled
}

// Fail marks the send failed. The optimistic user turn stays in history.
func (c *Conversation) Fail() {
	c.state = SendFailed
}
