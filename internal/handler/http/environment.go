package http

import (
	"net/http"

	"github.com/MKhiriev/coffee-shop/internal/logger"
	"github.com/MKhiriev/coffee-shop/internal/utils"
)

// getEnvironment publishes the configuration the front end boots with.
func (h *Handler) getEnvironment(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, h.env, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write environment")
	}
}
