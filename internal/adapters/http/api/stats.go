package api

import (
	"context"
	"net/http"

	"github.com/okian/shaftdb/internal/domain/types"
)

// StatsDependencies defines the catalog summaries the API exposes.
type StatsDependencies interface {
	Manufacturers(ctx context.Context) ([]string, error)
	Stats(ctx context.Context) (types.Stats, error)
}

// StatsHandler handles catalog summary requests.
type StatsHandler struct {
	deps StatsDependencies
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(deps StatsDependencies) *StatsHandler {
	return &StatsHandler{deps: deps}
}

// HandleManufacturers handles GET /manufacturers.
func (h *StatsHandler) HandleManufacturers(w http.ResponseWriter, r *http.Request) {
	names, err := h.deps.Manufacturers(r.Context())
	if err != nil {
		fail(w, Wrap("api.list_manufacturers", err))
		return
	}
	writeJSON(w, http.StatusOK, names)
}

// HandleStats handles GET /stats.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.deps.Stats(r.Context())
	if err != nil {
		fail(w, Wrap("api.stats", err))
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
