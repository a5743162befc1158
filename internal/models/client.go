package models

import (
	"time"

	"github.com/google/uuid"
)

// Client is a business account (tenant). Prompts and delivery zones
// are scoped to a client.
type Client struct {
	ID           uuid.UUID `json:"id" db:"id"`
	BusinessName string    `json:"business_name" db:"business_name"`
	Industry     string    `json:"industry,omitempty" db:"industry"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
