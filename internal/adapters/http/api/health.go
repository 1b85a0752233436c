package api

import (
	"net/http"

	"github.com/okian/shaftdb/internal/domain/types"
	"github.com/okian/shaftdb/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StatusProvider reports the catalog snapshot being served.
type StatusProvider interface {
	Status() types.Status
}

// HealthHandler handles health check and metrics requests.
type HealthHandler struct {
	status StatusProvider
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(status StatusProvider) *HealthHandler {
	return &HealthHandler{status: status}
}

type healthResponse struct {
	Status  string       `json:"status"`
	Catalog types.Status `json:"catalog"`
}

// HandleHealth handles GET /healthz. The process is healthy even before a
// catalog is built; the catalog field tells the two apart.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Catalog: h.status.Status()})
}

// HandleMetrics handles GET /metrics from the custom registry.
func (h *HealthHandler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}).ServeHTTP(w, r)
}
