package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/setterlabs/crm-backend/internal/demo"
)

// DemoHandler serves the fabricated analytics the dashboard charts.
type DemoHandler struct{}

func NewDemoHandler() *DemoHandler {
	return &DemoHandler{}
}

func (h *DemoHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, demo.GenerateStats())
}

func (h *DemoHandler) Conversations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, demo.GenerateConversations())
}

func (h *DemoHandler) Leads(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, demo.GenerateLeads())
}

func (h *DemoHandler) ChannelConversations(w http.ResponseWriter, r *http.Request) {
	channel := chi.URLParam(r, "channel")
	if !demo.ValidChannel(channel) {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "error": "Canal inválido"})
		return
	}

	conversations := demo.GenerateChannelConversations(channel, 15)
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": conversations})
}
