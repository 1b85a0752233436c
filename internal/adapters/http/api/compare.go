package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/okian/shaftdb/internal/domain/model"
	"github.com/okian/shaftdb/internal/domain/types"
)

// CompareDependencies defines the reads behind comparison and progression views.
type CompareDependencies interface {
	Compare(ctx context.Context, names []string) (types.Comparison, []string, error)
	WeightProgression(ctx context.Context, manufacturer, modelName string) ([]model.ShaftSpec, error)
}

// CompareHandler handles side-by-side comparison and weight progression.
type CompareHandler struct {
	deps       CompareDependencies
	maxCompare int
}

// NewCompareHandler creates a new compare handler.
func NewCompareHandler(deps CompareDependencies, maxCompare int) *CompareHandler {
	return &CompareHandler{deps: deps, maxCompare: maxCompare}
}

type compareResponse struct {
	types.Comparison
	Missing []string `json:"missing"`
}

// HandleCompare handles GET /shafts/compare?name=...&name=... where each
// name is a display name.
func (h *CompareHandler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	const op = "api.compare_shafts"
	var names []string
	for _, n := range r.URL.Query()["name"] {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	switch {
	case len(names) == 0:
		fail(w, WrapKind(op, ErrBadRequest, fmt.Errorf("at least one name is required")))
		return
	case len(names) > h.maxCompare:
		fail(w, WrapKind(op, ErrBadRequest, fmt.Errorf("at most %d names may be compared", h.maxCompare)))
		return
	}

	cmp, missing, err := h.deps.Compare(r.Context(), names)
	if err != nil {
		fail(w, Wrap(op, err))
		return
	}
	if cmp.Empty() {
		fail(w, WrapKind(op, ErrNotFound, fmt.Errorf("no shaft named %s", strings.Join(missing, ", "))))
		return
	}
	if missing == nil {
		missing = []string{}
	}
	writeJSON(w, http.StatusOK, compareResponse{Comparison: cmp, Missing: missing})
}

// HandleProgression handles GET /shafts/progression?manufacturer=&model=.
func (h *CompareHandler) HandleProgression(w http.ResponseWriter, r *http.Request) {
	const op = "api.weight_progression"
	q := r.URL.Query()
	manufacturer := strings.TrimSpace(q.Get("manufacturer"))
	modelName := strings.TrimSpace(q.Get("model"))
	if manufacturer == "" || modelName == "" {
		fail(w, WrapKind(op, ErrBadRequest, fmt.Errorf("manufacturer and model are required")))
		return
	}

	line, err := h.deps.WeightProgression(r.Context(), manufacturer, modelName)
	if err != nil {
		fail(w, Wrap(op, err))
		return
	}
	if len(line) == 0 {
		fail(w, WrapKind(op, ErrNotFound, fmt.Errorf("no shafts for %s %s", manufacturer, modelName)))
		return
	}
	writeJSON(w, http.StatusOK, line)
}
