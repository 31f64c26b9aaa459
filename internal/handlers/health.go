package handlers

//go:generate mockgen -source=health.go -destination=health_mock.go -package=handlers

import (
	"context"
	"net/http"
)

// HealthChecker reports the status of each backing store.
type HealthChecker interface {
	Check(ctx context.Context) (map[string]string, bool)
}

// HealthResponse reports service readiness
// swagger:model HealthResponse
type HealthResponse struct {
	// Overall status
	// default: ok
	Status string `json:"status"`

	// Status per dependency
	Checks map[string]string `json:"checks"`
}

// NewHealthHandler returns an HTTP handler reporting readiness.
// @Summary Health check
// @Description Pings MongoDB and, when configured, Redis.
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "All dependencies reachable"
// @Failure 503 {object} handlers.HealthResponse "A dependency is unreachable"
// @Router /health [get]
func NewHealthHandler(checker HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks, ok := checker.Check(r.Context())
		if !ok {
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Checks: checks})
			return
		}
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Checks: checks})
	}
}
