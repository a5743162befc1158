package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/setterlabs/crm-backend/internal/audit"
	"github.com/setterlabs/crm-backend/internal/config"
	"github.com/setterlabs/crm-backend/internal/conversation"
	"github.com/setterlabs/crm-backend/internal/llm"
	"github.com/setterlabs/crm-backend/internal/models"
)

// PromptResolver supplies the per-client system prompt.
type PromptResolver interface {
	Resolve(ctx context.Context, clientID uuid.UUID) string
}

// ProductMatcher finds catalog products for a user message. The search
// runs on every turn without relevance gating; the model is trusted to
// ignore context that does not apply. Swapping in a gating strategy
// only requires a different implementation of this interface.
type ProductMatcher interface {
	Match(ctx context.Context, query string) []models.Product
}

// ZoneLister supplies the active delivery zones for a client.
type ZoneLister interface {
	ActiveZones(ctx context.Context, clientID uuid.UUID) ([]models.DeliveryZone, error)
}

// Response is what the caller renders back to the end user: the
// generated reply plus the products it was grounded on, so product
// cards (with photos) can be sent as separate messages.
type Response struct {
	Text     string           `json:"text"`
	Products []models.Product `json:"products"`
}

// UsageRecorder persists completion usage. Recording is best effort.
type UsageRecorder interface {
	RecordUsage(ctx context.Context, rec audit.UsageRecord) error
}

// Responder assembles conversation context and requests a completion.
type Responder struct {
	prompts PromptResolver
	catalog ProductMatcher
	zones   ZoneLister
	gateway llm.Gateway
	usage   UsageRecorder
	model   string
	cfg     config.AgentConfig
}

func NewResponder(prompts PromptResolver, catalog ProductMatcher, zones ZoneLister, gw llm.Gateway, model string, cfg config.AgentConfig) *Responder {
	return &Responder{
		prompts: prompts,
		catalog: catalog,
		zones:   zones,
		gateway: gw,
		model:   model,
		cfg:     cfg,
	}
}

// WithUsageRecorder enables usage persistence for generated responses.
func (r *Responder) WithUsageRecorder(u UsageRecorder) *Responder {
	r.usage = u
	return r
}

// GenerateResponse runs the strictly sequential pipeline: resolve the
// system prompt, search the catalog, append product and delivery
// context, then request a completion. Every sub-fetch fails open; only
// a completion failure is returned to the caller, because without a
// generated reply there is nothing to send.
func (r *Responder) GenerateResponse(ctx context.Context, history []conversation.Turn, userMessage string, clientID uuid.UUID) (*Response, error) {
	basePrompt := r.prompts.Resolve(ctx, clientID)

	products := r.catalog.Match(ctx, userMessage)
	additionalContext := BuildProductContext(products)

	zones, err := r.zones.ActiveZones(ctx, clientID)
	if err != nil {
		slog.Error("delivery zone lookup failed", "client_id", clientID, "error", err)
		zones = nil
	}
	additionalContext += BuildZoneContext(zones)

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: "system", Content: basePrompt + additionalContext})
	for _, turn := range history {
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{Role: "user", Content: userMessage})

	resp, err := r.gateway.Chat(ctx, llm.ChatRequest{
		Model:            r.model,
		Messages:         messages,
		Temperature:      r.cfg.Temperature,
		MaxTokens:        r.cfg.MaxTokens,
		PresencePenalty:  r.cfg.PresencePenalty,
		FrequencyPenalty: r.cfg.FrequencyPenalty,
	})
	if err != nil {
		slog.Error("completion failed", "client_id", clientID, "error", err)
		return nil, fmt.Errorf("generate response: %w", err)
	}

	if r.usage != nil {
		rec := audit.UsageRecord{
			ClientID:     clientID,
			Provider:     resp.Provider,
			Model:        resp.Model,
			InputTokens:  resp.InputTokens,
			OutputTokens: resp.OutputTokens,
			TotalTokens:  resp.TotalTokens,
			CostUSD:      resp.CostUSD,
			LatencyMs:    resp.LatencyMs,
		}
		if err := r.usage.RecordUsage(ctx, rec); err != nil {
			slog.Warn("usage record failed", "error", err)
		}
	}

	slog.Info("agent response generated",
		"client_id", clientID,
		"products_found", len(products),
		"tokens", resp.TotalTokens,
		"cost_usd", resp.CostUSD,
		"latency_ms", resp.LatencyMs,
	)

	return &Response{Text: resp.Content, Products: products}, nil
}
