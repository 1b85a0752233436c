package api

import (
	"context"
	"net/http"

	"github.com/okian/shaftdb/internal/domain/types"
	"github.com/okian/shaftdb/pkg/logger"
)

// AdminDependencies defines the snapshot controls the API exposes.
type AdminDependencies interface {
	StatusProvider
	Reload(ctx context.Context) error
}

// AdminHandler handles operator requests.
type AdminHandler struct {
	deps   AdminDependencies
	logger logger.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(deps AdminDependencies, l logger.Logger) *AdminHandler {
	return &AdminHandler{deps: deps, logger: l}
}

type reloadResponse struct {
	Status  string       `json:"status"`
	Catalog types.Status `json:"catalog"`
}

// HandleReload handles POST /admin/reload. A failed reload keeps serving the
// previous snapshot.
func (h *AdminHandler) HandleReload(w http.ResponseWriter, r *http.Request) {
	const op = "api.reload"
	if err := h.deps.Reload(r.Context()); err != nil {
		h.logger.Warn(r.Context(), "reload requested over HTTP failed", logger.Error(err))
		fail(w, WrapKind(op, ErrInternal, err))
		return
	}
	writeJSON(w, http.StatusOK, reloadResponse{Status: "reloaded", Catalog: h.deps.Status()})
}
