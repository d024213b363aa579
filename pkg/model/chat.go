package model

import "github.com/google/uuid"

type MessageID string

// NewMessageID generates a new unique MessageID
func NewMessageID() MessageID {
	return MessageID(uuid.New().String())
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of a follow-up conversation. Messages are derived
// per active session and are not part of the persisted session shape.
type Message struct {
	ID   MessageID
	Role Role
	Text string
}
