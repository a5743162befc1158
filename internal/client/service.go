package client

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/setterlabs/crm-backend/internal/models"
)

// Service reads client (tenant) rows. Clients are created and managed
// by external admin tooling; this service only looks them up.
type Service struct {
	db *pgxpool.Pool
}

func NewService(db *pgxpool.Pool) *Service {
	return &Service{db: db}
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	var c models.Client
	err := s.db.QueryRow(ctx,
		`SELECT id, business_name, industry, is_active, created_at
		 FROM clients WHERE id = $1`, id,
	).Scan(&c.ID, &c.BusinessName, &c.Industry, &c.IsActive, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

func (s *Service) GetByBusinessName(ctx context.Context, name string) (*models.Client, error) {
	var c models.Client
	err := s.db.QueryRow(ctx,
		`SELECT id, business_name, industry, is_active, created_at
		 FROM clients WHERE business_name = $1`, name,
	).Scan(&c.ID, &c.BusinessName, &c.Industry, &c.IsActive, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get client by business name: %w", err)
	}
	return &c, nil
}
