package handlers

import (
	"net/http"

	"github.com/setterlabs/crm-backend/internal/config"
)

// ConfigHandler serves the static client profile the dashboard uses to
// brand itself, with the industry profile embedded.
type ConfigHandler struct{}

func NewConfigHandler() *ConfigHandler {
	return &ConfigHandler{}
}

type clientConfigResponse struct {
	config.ClientProfile
	IndustryConfig config.IndustryProfile `json:"industryConfig"`
}

func (h *ConfigHandler) ClientConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data": clientConfigResponse{
			ClientProfile:  config.Client(),
			IndustryConfig: config.Industry(),
		},
	})
}
