package prompt

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Fallback is returned whenever no active prompt can be resolved. The
// agent must always have some system prompt, so prompt lookups fail
// open rather than failing the conversation.
const Fallback = "Sos un asistente virtual."

// Store fetches the active prompt text for a client.
type Store interface {
	ActivePrompt(ctx context.Context, clientID uuid.UUID) (string, error)
}

// PGStore reads agent_prompts from Postgres.
type PGStore struct {
	db *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

// ActivePrompt returns the first active prompt row for the client.
// At most one row should be active; if several are, the first wins.
func (s *PGStore) ActivePrompt(ctx context.Context, clientID uuid.UUID) (string, error) {
	var text string
	err := s.db.QueryRow(ctx,
		`SELECT prompt_text FROM agent_prompts
		 WHERE client_id = $1 AND is_active = true
		 LIMIT 1`, clientID,
	).Scan(&text)
	if err != nil {
		return "", fmt.Errorf("get active prompt: %w", err)
	}
	return text, nil
}

// Resolver turns a client id into a system prompt, substituting the
// fallback on any error or missing row.
type Resolver struct {
	store Store
}

func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

func (r *Resolver) Resolve(ctx context.Context, clientID uuid.UUID) string {
	if clientID == uuid.Nil {
		return Fallback
	}

	text, err := r.store.ActivePrompt(ctx, clientID)
	if err != nil {
		slog.Error("prompt lookup failed, using fallback", "client_id", clientID, "error", err)
		return Fallback
	}
	if text == "" {
		return Fallback
	}
	return text
}
