package models

import (
	"time"

	"github.com/google/uuid"
)

// Interaction is one logged chat turn.
type Interaction struct {
	ID             uuid.UUID `db:"id"`
	ConversationID string    `db:"conversation_id"`
	UserMessage    string    `db:"user_message"`
	Response       string    `db:"response"`
	Intent         Intent    `db:"intent"`
	Confidence     float64   `db:"confidence"`
	Escalated      bool      `db:"escalated"`
	CreatedAt      time.Time `db:"created_at"`
}

// Feedback is a user rating for a conversation.
type Feedback struct {
	ID             uuid.UUID `db:"id"`
	ConversationID string    `db:"conversation_id"`
	Rating         int       `db:"rating"`
	Comments       string    `db:"comments"`
	CreatedAt      time.Time `db:"created_at"`
}
