package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/setterlabs/crm-backend/internal/agent"
	"github.com/setterlabs/crm-backend/internal/config"
	"github.com/setterlabs/crm-backend/internal/conversation"
	"github.com/setterlabs/crm-backend/internal/humanizer"
	"github.com/setterlabs/crm-backend/internal/models"
	"github.com/setterlabs/crm-backend/internal/queue"
)

// ResponseGenerator is the agent pipeline behind the demo webhook.
type ResponseGenerator interface {
	GenerateResponse(ctx context.Context, history []conversation.Turn, userMessage string, clientID uuid.UUID) (*agent.Response, error)
}

// ClientLookup resolves the demo tenant.
type ClientLookup interface {
	GetByBusinessName(ctx context.Context, name string) (*models.Client, error)
}

// EventEnqueuer publishes message.processed events, best effort.
type EventEnqueuer interface {
	EnqueueMessageProcessed(payload queue.MessageProcessedPayload) error
}

type ChatHandler struct {
	responder     ResponseGenerator
	conversations conversation.Store
	clients       ClientLookup
	events        EventEnqueuer
	cfg           config.AgentConfig
}

func NewChatHandler(responder ResponseGenerator, store conversation.Store, clients ClientLookup, events EventEnqueuer, cfg config.AgentConfig) *ChatHandler {
	return &ChatHandler{
		responder:     responder,
		conversations: store,
		clients:       clients,
		events:        events,
		cfg:           cfg,
	}
}

type demoMessageRequest struct {
	UserID   string `json:"userId"`
	Message  string `json:"message"`
	Platform string `json:"platform"`
}

// DemoMessage handles one inbound end-user message: generate a reply,
// hold it back for a human-feeling delay, then record both turns.
func (h *ChatHandler) DemoMessage(w http.ResponseWriter, r *http.Request) {
	var req demoMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "error": "invalid request body"})
		return
	}
	if req.UserID == "" || req.Message == "" {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "error": "userId and message required"})
		return
	}

	slog.Info("message received", "user_id", req.UserID, "platform", req.Platform)

	ctx := r.Context()
	history := h.conversations.History(req.UserID)

	// The demo runs against a single configured tenant. A failed
	// lookup is not fatal: the agent falls back to the default prompt
	// and skips delivery zones.
	clientID := uuid.Nil
	c, err := h.clients.GetByBusinessName(ctx, h.cfg.BusinessName)
	if err != nil {
		slog.Error("client lookup failed", "business_name", h.cfg.BusinessName, "error", err)
	} else {
		clientID = c.ID
	}

	resp, err := h.responder.GenerateResponse(ctx, history, req.Message, clientID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"success": false, "error": err.Error()})
		return
	}

	delay := humanizer.Delay(h.cfg.TypingDelayMin, h.cfg.TypingDelayMax)
	slog.Info("simulating typing", "delay_ms", delay.Milliseconds())
	if err := humanizer.Wait(ctx, delay); err != nil {
		// Caller went away while we were "typing".
		return
	}

	h.conversations.Append(req.UserID,
		conversation.Turn{Role: "user", Content: req.Message},
		conversation.Turn{Role: "assistant", Content: resp.Text},
	)

	if h.events != nil {
		err := h.events.EnqueueMessageProcessed(queue.MessageProcessedPayload{
			ConversationID: req.UserID,
			Platform:       req.Platform,
			ClientID:       clientID.String(),
			UserMessage:    req.Message,
			ReplyText:      resp.Text,
			ProductsFound:  len(resp.Products),
		})
		if err != nil {
			slog.Warn("event enqueue failed", "error", err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"response": resp.Text,
		"products": resp.Products,
	})
}

type historyMessage struct {
	Type      string `json:"type"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// ConversationHistory returns the stored turns of one conversation in
// the shape the inbox UI renders.
func (h *ChatHandler) ConversationHistory(w http.ResponseWriter, r *http.Request) {
	convID := chi.URLParam(r, "convId")
	history := h.conversations.History(convID)

	messages := make([]historyMessage, len(history))
	now := time.Now().UTC().Format(time.RFC3339)
	for i, turn := range history {
		msgType := "agent"
		if turn.Role == "user" {
			msgType = "user"
		}
		messages[i] = historyMessage{Type: msgType, Text: turn.Content, Timestamp: now}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"messages": messages,
		"isTyping": false,
	})
}

type sendMessageRequest struct {
	Message string `json:"message"`
}

// SendMessage fakes a manual agent send; nothing is delivered.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "error": "invalid request body"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Mensaje enviado",
		"data": map[string]interface{}{
			"id":        "msg_" + uuid.NewString(),
			"text":      req.Message,
			"sender":    "agent",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"seen":      false,
		},
	})
}

type toggleAIRequest struct {
	AIEnabled bool `json:"aiEnabled"`
}

// ToggleAI records a hand-off between the AI and a human agent.
func (h *ChatHandler) ToggleAI(w http.ResponseWriter, r *http.Request) {
	convID := chi.URLParam(r, "convId")

	var req toggleAIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "error": "invalid request body"})
		return
	}

	slog.Info("ai hand-off", "conversation_id", convID, "ai_enabled", req.AIEnabled)

	message := "Modo manual activado"
	if req.AIEnabled {
		message = "IA activada exitosamente"
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"convId":    convID,
		"aiEnabled": req.AIEnabled,
		"message":   message,
	})
}
