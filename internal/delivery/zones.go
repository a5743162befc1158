package delivery

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/setterlabs/crm-backend/internal/cache"
	"github.com/setterlabs/crm-backend/internal/models"
)

// Lister returns the active delivery zones for a client.
type Lister interface {
	ActiveZones(ctx context.Context, clientID uuid.UUID) ([]models.DeliveryZone, error)
}

// Service reads delivery_zones from Postgres with a short-TTL cache.
type Service struct {
	db       *pgxpool.Pool
	cache    *cache.Cache
	cacheTTL time.Duration
}

func NewService(db *pgxpool.Pool, c *cache.Cache) *Service {
	return &Service{db: db, cache: c, cacheTTL: 60 * time.Second}
}

func (s *Service) ActiveZones(ctx context.Context, clientID uuid.UUID) ([]models.DeliveryZone, error) {
	key := "delivery:zones:" + clientID.String()
	if s.cache != nil {
		var cached []models.DeliveryZone
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			return cached, nil
		}
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, client_id, zone_name, price, is_active
		 FROM delivery_zones
		 WHERE client_id = $1 AND is_active = true`, clientID)
	if err != nil {
		return nil, fmt.Errorf("query delivery zones: %w", err)
	}
	defer rows.Close()

	var zones []models.DeliveryZone
	for rows.Next() {
		var z models.DeliveryZone
		if err := rows.Scan(&z.ID, &z.ClientID, &z.ZoneName, &z.Price, &z.IsActive); err != nil {
			return nil, fmt.Errorf("scan delivery zone: %w", err)
		}
		zones = append(zones, z)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate delivery zones: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, key, zones, s.cacheTTL)
	}
	return zones, nil
}
