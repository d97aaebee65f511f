package session

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docfusion/docfusion-tui/client"
)

func TestIsDefaultName(t *testing.T) {
	cases := map[string]bool{
		"Session 1":        true,
		"session 12":       true,
		"SESSION 3":        true,
		"Session  42":      true,
		"Session":          false,
		"Session one":      false,
		"My Session 1":     false,
		"Session 1 notes":  false,
		"Quarterly report": false,
		"":                 false,
	}
	for name, want := range cases {
		assert.Equal(t, want, IsDefaultName(name), "name %q", name)
	}
}

func TestSuggestWindowShortHistory(t *testing.T) {
	user := client.Message{Role: "user", Content: "q"}
	assistant := client.Message{Role: "assistant", Content: "a"}

	window := SuggestWindow(nil, user, assistant)

	assert.Len(t, window, 2)
	assert.Equal(t, "q", window[0].Content)
	assert.Equal(t, "a", window[1].Content)
}

func TestSuggestWindowCapsPriorAtFour(t *testing.T) {
	var prior []client.Message
	for i := 0; i < 10; i++ {
		prior = append(prior, client.Message{Role: "user", Content: fmt.Sprintf("m%d", i)})
	}
	user := client.Message{Role: "user", Content: "q"}
	assistant := client.Message{Role: "assistant", Content: "a"}

	window := SuggestWindow(prior, user, assistant)

	assert.Len(t, window, 6)
	// The four newest prior turns come first, in order.
	assert.Equal(t, "m6", window[0].Content)
	assert.Equal(t, "m9", window[3].Content)
	assert.Equal(t, "q", window[4].Content)
	assert.Equal(t, "a", window[5].Content)
}
