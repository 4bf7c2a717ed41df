package model

import (
	"time"

	"github.com/google/uuid"
)

type ConversationID string

// NewConversationID generates a new unique ConversationID
func NewConversationID() ConversationID {
	return ConversationID(uuid.New().String())
}

// Role identifies the author of a conversation turn
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single message in a conversation. Turns are immutable once
// appended; Videos and Places are set only when the turn carried results.
type Turn struct {
	Role      Role       `json:"role"`
	Text      string     `json:"text"`
	Videos    []VideoRef `json:"videos,omitempty"`
	Places    []PlaceRef `json:"places,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Conversation holds the ordered turn history of one chat session
type Conversation struct {
	ID        ConversationID
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Do not save turn contents to Firestore due to document size limits.
	// Turns are persisted as a JSON payload in blob storage instead.
	Turns []*Turn `firestore:"-" json:"turns"`
}

// Append adds a turn to the history. Prior turns are never modified.
func (c *Conversation) Append(t *Turn) {
	c.Turns = append(c.Turns, t)
}

// Len returns the number of turns in the conversation
func (c *Conversation) Len() int {
	return len(c.Turns)
}
