package conversation

// Turn is one message in a conversation, role "user" or "assistant".
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Store maps an opaque conversation id to its ordered turn history.
// History lives for the process lifetime only; a restart discards it.
type Store interface {
	History(conversationID string) []Turn
	Append(conversationID string, turns ...Turn)
}
