package models

import (
	"time"

	"github.com/google/uuid"
)

// AgentPrompt is a per-client system prompt. At most one row should be
// active per client; readers take the first active row either way.
type AgentPrompt struct {
	ID         uuid.UUID `json:"id" db:"id"`
	ClientID   uuid.UUID `json:"client_id" db:"client_id"`
	PromptText string    `json:"prompt_text" db:"prompt_text"`
	IsActive   bool      `json:"is_active" db:"is_active"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
