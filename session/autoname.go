package session

import (
	"regexp"

	"github.com/docfusion/docfusion-tui/client"
)

// defaultName matches server-assigned sequential names like "Session 3".
// Only sessions still carrying such a name are auto-renamed.
var defaultName = regexp.MustCompile(`(?i)^session\s+\d+$`)

// IsDefaultName reports whether the auto-naming workflow should run for a
// session with this name after a completed exchange.
func IsDefaultName(name string) bool {
	return defaultName.MatchString(name)
}

// suggestTail is how many prior messages accompany the completed exchange
// in the naming request.
const suggestTail = 4

// SuggestWindow builds the message window posted to the suggest endpoint:
// the last four messages preceding the exchange, then the user turn and
// the assistant's answer.
func SuggestWindow(prior []client.Message, user, assistant client.Message) []client.Message {
	start := len(prior) - suggestTail
	if start < 0 {
		start = 0
	}
	window := make([]client.Message, 0, suggestTail+2)
	window = append(window, prior[start:]...)
	window = append(window, user, assistant)
	return window
}
