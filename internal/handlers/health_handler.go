package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

// Pinger reports whether a dependency is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse is the body of the health endpoint
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// HealthHandler reports liveness and database reachability
type HealthHandler struct {
	BaseHandler
	db Pinger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db Pinger, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		BaseHandler: BaseHandler{Logger: logger},
		db:          db,
	}
}

// Health handles GET /health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.Logger.Warn("database ping failed", zap.Error(err))
		h.RespondJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "degraded", Database: "unreachable"})
		return
	}
	h.RespondJSON(w, http.StatusOK, HealthResponse{Status: "ok", Database: "ok"})
}
