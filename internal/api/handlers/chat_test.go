package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/setterlabs/crm-backend/internal/agent"
	"github.com/setterlabs/crm-backend/internal/config"
	"github.com/setterlabs/crm-backend/internal/conversation"
	"github.com/setterlabs/crm-backend/internal/models"
	"github.com/setterlabs/crm-backend/internal/queue"
)

type stubResponder struct {
	resp *agent.Response
	err  error

	gotMessage string
	gotHistory []conversation.Turn
	gotClient  uuid.UUID
}

func (s *stubResponder) GenerateResponse(ctx context.Context, history []conversation.Turn, userMessage string, clientID uuid.UUID) (*agent.Response, error) {
	s.gotMessage = userMessage
	s.gotHistory = history
	s.gotClient = clientID
	return s.resp, s.err
}

type stubClients struct {
	client *models.Client
	err    error
}

func (s *stubClients) GetByBusinessName(ctx context.Context, name string) (*models.Client, error) {
	return s.client, s.err
}

type stubEvents struct {
	payloads []queue.MessageProcessedPayload
	err      error
}

func (s *stubEvents) EnqueueMessageProcessed(p queue.MessageProcessedPayload) error {
	s.payloads = append(s.payloads, p)
	return s.err
}

func testAgentConfig() config.AgentConfig {
	return config.AgentConfig{
		BusinessName:   "Demo Business",
		TypingDelayMin: 0,
		TypingDelayMax: 0,
	}
}

func newChatHandler(t *testing.T, responder *stubResponder, clients *stubClients, events *stubEvents) (*ChatHandler, *conversation.MemoryStore) {
	t.Helper()
	store := conversation.NewMemoryStore(0)
	var ev EventEnqueuer
	if events != nil {
		ev = events
	}
	return NewChatHandler(responder, store, clients, ev, testAgentConfig()), store
}

func postDemoMessage(t *testing.T, h *ChatHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhook/demo-message", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.DemoMessage(rec, req)
	return rec
}

func TestDemoMessage_HappyPath(t *testing.T) {
	clientID := uuid.New()
	responder := &stubResponder{resp: &agent.Response{Text: "¡Hola!", Products: []models.Product{}}}
	clients := &stubClients{client: &models.Client{ID: clientID}}
	events := &stubEvents{}
	h, store := newChatHandler(t, responder, clients, events)

	rec := postDemoMessage(t, h, `{"userId":"u1","message":"hola","platform":"whatsapp"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success  bool             `json:"success"`
		Response string           `json:"response"`
		Products []models.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "¡Hola!", body.Response)
	assert.NotNil(t, body.Products)
	assert.Empty(t, body.Products)

	assert.Equal(t, clientID, responder.gotClient)
	assert.Equal(t, "hola", responder.gotMessage)

	history := store.History("u1")
	require.Len(t, history, 2)
	assert.Equal(t, conversation.Turn{Role: "user", Content: "hola"}, history[0])
	assert.Equal(t, conversation.Turn{Role: "assistant", Content: "¡Hola!"}, history[1])

	require.Len(t, events.payloads, 1)
	assert.Equal(t, "u1", events.payloads[0].ConversationID)
	assert.Equal(t, "whatsapp", events.payloads[0].Platform)
}

func TestDemoMessage_HistoryPassedToResponder(t *testing.T) {
	responder := &stubResponder{resp: &agent.Response{Text: "ok"}}
	h, store := newChatHandler(t, responder, &stubClients{client: &models.Client{ID: uuid.New()}}, nil)

	store.Append("u1",
		conversation.Turn{Role: "user", Content: "hola"},
		conversation.Turn{Role: "assistant", Content: "buenas"},
	)

	rec := postDemoMessage(t, h, `{"userId":"u1","message":"precio?","platform":"web"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, responder.gotHistory, 2)
	assert.Equal(t, "hola", responder.gotHistory[0].Content)
	// Turns are stored only after the reply is produced.
	assert.Len(t, store.History("u1"), 4)
}

func TestDemoMessage_MissingFields(t *testing.T) {
	h, _ := newChatHandler(t, &stubResponder{}, &stubClients{}, nil)

	rec := postDemoMessage(t, h, `{"message":"hola"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postDemoMessage(t, h, `{"userId":"u1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postDemoMessage(t, h, `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDemoMessage_ClientLookupFailureStillResponds(t *testing.T) {
	responder := &stubResponder{resp: &agent.Response{Text: "hola"}}
	clients := &stubClients{err: errors.New("db down")}
	h, _ := newChatHandler(t, responder, clients, nil)

	rec := postDemoMessage(t, h, `{"userId":"u1","message":"hola","platform":"web"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uuid.Nil, responder.gotClient)
}

func TestDemoMessage_ResponderFailure(t *testing.T) {
	responder := &stubResponder{err: errors.New("completion failed")}
	h, store := newChatHandler(t, responder, &stubClients{client: &models.Client{ID: uuid.New()}}, nil)

	rec := postDemoMessage(t, h, `{"userId":"u1","message":"hola","platform":"web"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.NotEmpty(t, body.Error)

	// A failed generation never pollutes history.
	assert.Empty(t, store.History("u1"))
}

func TestDemoMessage_EnqueueFailureIsBestEffort(t *testing.T) {
	responder := &stubResponder{resp: &agent.Response{Text: "hola"}}
	events := &stubEvents{err: errors.New("redis down")}
	h, _ := newChatHandler(t, responder, &stubClients{client: &models.Client{ID: uuid.New()}}, events)

	rec := postDemoMessage(t, h, `{"userId":"u1","message":"hola","platform":"web"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestConversationHistory_ShapesTurnsForInbox(t *testing.T) {
	h, store := newChatHandler(t, &stubResponder{}, &stubClients{}, nil)
	store.Append("abc",
		conversation.Turn{Role: "user", Content: "hola"},
		conversation.Turn{Role: "assistant", Content: "buenas"},
	)

	r := chi.NewRouter()
	r.Get("/api/demo/conversation/{convId}", h.ConversationHistory)

	req := httptest.NewRequest(http.MethodGet, "/api/demo/conversation/abc", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success  bool `json:"success"`
		Messages []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"messages"`
		IsTyping bool `json:"isTyping"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.False(t, body.IsTyping)
	require.Len(t, body.Messages, 2)
	assert.Equal(t, "user", body.Messages[0].Type)
	assert.Equal(t, "hola", body.Messages[0].Text)
	assert.Equal(t, "agent", body.Messages[1].Type)
}

func TestConversationHistory_UnknownConversationIsEmpty(t *testing.T) {
	h, _ := newChatHandler(t, &stubResponder{}, &stubClients{}, nil)

	r := chi.NewRouter()
	r.Get("/api/demo/conversation/{convId}", h.ConversationHistory)

	req := httptest.NewRequest(http.MethodGet, "/api/demo/conversation/nobody", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Messages []json.RawMessage `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.Messages)
}

func TestToggleAI(t *testing.T) {
	h, _ := newChatHandler(t, &stubResponder{}, &stubClients{}, nil)

	r := chi.NewRouter()
	r.Post("/api/conversations/{convId}/toggle-ai", h.ToggleAI)

	req := httptest.NewRequest(http.MethodPost, "/api/conversations/abc/toggle-ai", strings.NewReader(`{"aiEnabled":true}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success   bool   `json:"success"`
		ConvID    string `json:"convId"`
		AIEnabled bool   `json:"aiEnabled"`
		Message   string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "abc", body.ConvID)
	assert.True(t, body.AIEnabled)
	assert.Equal(t, "IA activada exitosamente", body.Message)
}

func TestSendMessage_EchoesFakePayload(t *testing.T) {
	h, _ := newChatHandler(t, &stubResponder{}, &stubClients{}, nil)

	r := chi.NewRouter()
	r.Post("/api/conversations/{convId}/messages", h.SendMessage)

	req := httptest.NewRequest(http.MethodPost, "/api/conversations/abc/messages", strings.NewReader(`{"message":"hola!"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			ID     string `json:"id"`
			Text   string `json:"text"`
			Sender string `json:"sender"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.True(t, strings.HasPrefix(body.Data.ID, "msg_"))
	assert.Equal(t, "hola!", body.Data.Text)
	assert.Equal(t, "agent", body.Data.Sender)
}
