package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Service persists per-completion usage rows so the token and cost
// numbers survive beyond the process logs.
type Service struct {
	db *pgxpool.Pool
}

func NewService(db *pgxpool.Pool) *Service {
	return &Service{db: db}
}

type UsageRecord struct {
	ClientID     uuid.UUID
	Provider     string
	Model        string
	InputTokens  int
	OutputTokens int
	TotalTokens  int
	CostUSD      float64
	LatencyMs    int64
}

func (s *Service) RecordUsage(ctx context.Context, rec UsageRecord) error {
	var clientID *uuid.UUID
	if rec.ClientID != uuid.Nil {
		clientID = &rec.ClientID
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO llm_usage_logs (client_id, provider, model, input_tokens, output_tokens, total_tokens, cost_usd, latency_ms)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		clientID, rec.Provider, rec.Model, rec.InputTokens, rec.OutputTokens,
		rec.TotalTokens, rec.CostUSD, rec.LatencyMs,
	)
	if err != nil {
		return fmt.Errorf("insert usage log: %w", err)
	}
	return nil
}
