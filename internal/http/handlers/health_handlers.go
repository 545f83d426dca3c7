package handlers

import (
	"context"
	"net/http"
	"time"
)

// Health godoc
// @Summary Liveness and store connectivity probe
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /healthz [get]
func (h *ProductHandler) Health(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.repo.Ping(ctx); err != nil {
		h.log.Warn().Err(err).Msg("store ping failed")
		return writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
	}
	return writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
