// Package chat defines the message types exchanged between the player,
// the API, and the narrating agent.
package chat

const (
	RoleUser     = "user"      // the player
	RoleNarrator = "assistant" // the narrating agent
	RoleSystem   = "system"    // engine-supplied context
)

// Message is a single chat message in the running conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// HistoryLimit bounds how many prior messages are forwarded to the
// narrator on each turn.
const HistoryLimit = 10

// Trim returns the most recent messages within the history limit.
func Trim(messages []Message) []Message {
	if len(messages) <= HistoryLimit {
		return messages
	}
	return messages[len(messages)-HistoryLimit:]
}
