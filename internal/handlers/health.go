package handlers

import (
	"net/http"
	"time"
)

// HealthHandler reports service liveness and basic graph statistics.
type HealthHandler struct {
	catalog Catalog
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(c Catalog) *HealthHandler {
	return &HealthHandler{catalog: c}
}

// HealthResponse is the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Notes     int    `json:"notes"`
}

// ServeHTTP handles GET /api/health. The catalog is loaded once at
// startup, so a responding process with a populated graph is healthy.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Notes:     len(h.catalog.Notes()),
	})
}
