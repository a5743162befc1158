package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/setterlabs/crm-backend/internal/catalog"
)

// ProductHandler exposes the catalog to the dashboard.
type ProductHandler struct {
	store  catalog.Store
	logger *slog.Logger
}

func NewProductHandler(store catalog.Store, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{store: store, logger: logger}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.ListActive(r.Context())
	if err != nil {
		h.logger.Error("list products", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"success": false, "error": "failed to list products"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": products})
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "error": "invalid product id"})
		return
	}

	product, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{"success": false, "error": "product not found"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": product})
}

func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.store.ActiveCategories(r.Context())
	if err != nil {
		h.logger.Error("list categories", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"success": false, "error": "failed to list categories"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": categories})
}
