package handlers

import (
	"log/slog"
	"net/http"
	"time"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// HealthHandler provides health check endpoint
type HealthHandler struct {
	logger  *slog.Logger
	sources []string
}

// NewHealthHandler creates a new health handler. sources lists the names of
// the configured upstream product sources, in query order.
func NewHealthHandler(logger *slog.Logger, sources ...string) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		sources: sources,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Sources   []string  `json:"sources"`
}

// ServeHTTP handles health check requests. Upstreams are not probed; a
// lookup against an unreachable source degrades to "not found".
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   Version,
		Sources:   h.sources,
	}, h.logger)
}
