package handlers

import (
	"log/slog"
	"net/http"

	"github.com/setterlabs/crm-backend/internal/contacts"
)

// ContactHandler exposes the CRM contact list and aggregate stats.
type ContactHandler struct {
	service *contacts.Service
	logger  *slog.Logger
}

func NewContactHandler(service *contacts.Service, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{service: service, logger: logger}
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := contacts.Filter{
		Platform:    q.Get("platform"),
		Status:      q.Get("status"),
		LeadQuality: q.Get("leadQuality"),
		Search:      q.Get("search"),
	}

	list, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("list contacts", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"success": false, "error": "failed to list contacts"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": list})
}

func (h *ContactHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.logger.Error("contact stats", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"success": false, "error": "failed to compute stats"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": stats})
}
