package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docfusion/docfusion-tui/client"
)

func TestPrepareRejectsBlankInput(t *testing.T) {
	c := NewConversation()

	for _, raw := range []string{"", "   ", "\t", " \n "} {
		_, ok := c.Prepare(raw)
		assert.False(t, ok, "input %q should be rejected", raw)
	}

	text, ok := c.Prepare("  what is chapter 3 about?  ")
	assert.True(t, ok)
	assert.Equal(t, "what is chapter 3 about?", text)
}

func TestAppendUserIsOptimistic(t *testing.T) {
	c := NewConversation()
	c.Replace([]client.Message{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
	})

	prior := c.AppendUser("what changed in v2?")

	// The returned slice is the history before the turn, for the naming
	// suggestion window.
	assert.Len(t, prior, 2)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, SendSending, c.State())
	assert.Equal(t, "what changed in v2?", c.Messages()[2].Content)
}

func TestFailKeepsOptimisticTurn(t *testing.T) {
	c := NewConversation()
	c.AppendUser("summarize the intro")

	c.Fail()

	assert.Equal(t, SendFailed, c.State())
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, "user", c.Messages()[0].Role)
}

func TestApplyAnswerAppendsAssistantTurn(t *testing.T) {
	c := NewConversation()
	c.AppendUser("summarize the intro")

	page := 2
	c.ApplyAnswer("It introduces the dataset.", []client.Source{
		{Filename: "paper.pdf", Page: &page, Snippet: "we present"},
	})

	assert.Equal(t, SendSettled, c.State())
	assert.Equal(t, 2, c.Len())
	last := c.Messages()[1]
	assert.Equal(t, "assistant", last.Role)
	assert.Len(t, last.Sources, 1)
}

func TestReplaceIsWholesale(t *testing.T) {
	c := NewConversation()
	c.AppendUser("old turn")

	c.Replace([]client.Message{{Role: "user", Content: "from server"}})

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, "from server", c.Messages()[0].Content)
	assert.Equal(t, SendIdle, c.State())
}
