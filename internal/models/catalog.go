package models

import (
	"time"

	"github.com/google/uuid"
)

type ProductCategory struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Description    string    `json:"description,omitempty" db:"description"`
	SearchKeywords []string  `json:"search_keywords" db:"search_keywords"`
	IsActive       bool      `json:"is_active" db:"is_active"`
}

type Product struct {
	ID            uuid.UUID        `json:"id" db:"id"`
	Name          string           `json:"name" db:"name"`
	Description   string           `json:"description,omitempty" db:"description"`
	Price         float64          `json:"price" db:"price"`
	Currency      string           `json:"currency" db:"currency"`
	StockQuantity int              `json:"stock_quantity" db:"stock_quantity"`
	Tags          []string         `json:"tags,omitempty" db:"tags"`
	SellerPitch   string           `json:"seller_pitch,omitempty" db:"seller_pitch"`
	ImageURLs     []string         `json:"image_urls,omitempty" db:"image_urls"`
	CategoryID    *uuid.UUID       `json:"category_id,omitempty" db:"category_id"`
	Category      *ProductCategory `json:"category,omitempty" db:"-"`
	IsActive      bool             `json:"is_active" db:"is_active"`
	CreatedAt     time.Time        `json:"created_at" db:"created_at"`
}
