package models

import "github.com/google/uuid"

type DeliveryZone struct {
	ID       uuid.UUID `json:"id" db:"id"`
	ClientID uuid.UUID `json:"client_id" db:"client_id"`
	ZoneName string    `json:"zone_name" db:"zone_name"`
	Price    float64   `json:"price" db:"price"`
	IsActive bool      `json:"is_active" db:"is_active"`
}
