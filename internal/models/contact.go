package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a CRM contact captured from an inbound channel.
type Contact struct {
	ID                uuid.UUID  `json:"id" db:"id"`
	Name              string     `json:"name" db:"name"`
	Email             string     `json:"email,omitempty" db:"email"`
	Phone             string     `json:"phone,omitempty" db:"phone"`
	Platform          string     `json:"platform" db:"platform"`
	Status            string     `json:"status" db:"status"`
	LeadQuality       string     `json:"lead_quality,omitempty" db:"lead_quality"`
	LifetimeValue     float64    `json:"lifetime_value" db:"lifetime_value"`
	LastInteractionAt *time.Time `json:"last_interaction_at,omitempty" db:"last_interaction_at"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
}

// CRMStats is the aggregate served by the contacts stats endpoint.
type CRMStats struct {
	Total        int     `json:"total"`
	New          int     `json:"new"`
	Qualified    int     `json:"qualified"`
	Converted    int     `json:"converted"`
	HotLeads     int     `json:"hot_leads"`
	TotalRevenue float64 `json:"total_revenue"`
}
