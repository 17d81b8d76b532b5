package handlers

import (
	"net/http"
	"time"

	"quicktube-backend/internal/models"
)

type HealthHandler struct {
	version string
}

// NewHealthHandler takes the provider-pair label reported as the version.
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Service:   "quicktube-backend",
		Version:   h.version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
