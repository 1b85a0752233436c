package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/okian/shaftdb/internal/domain/model"
	"github.com/okian/shaftdb/internal/domain/normalize"
	"github.com/okian/shaftdb/internal/domain/query"
)

// ShaftsDependencies defines the catalog reads behind GET /shafts.
type ShaftsDependencies interface {
	Filter(ctx context.Context, p query.Predicates) ([]model.ShaftSpec, error)
	Search(ctx context.Context, q string) ([]model.ShaftSpec, error)
}

// ShaftsHandler handles listing and searching shafts.
type ShaftsHandler struct {
	deps         ShaftsDependencies
	defaultLimit int
	maxLimit     int
}

// NewShaftsHandler creates a new shafts handler.
func NewShaftsHandler(deps ShaftsDependencies, defaultLimit, maxLimit int) *ShaftsHandler {
	return &ShaftsHandler{deps: deps, defaultLimit: defaultLimit, maxLimit: maxLimit}
}

// HandleList handles GET /shafts with filters and limit/offset pagination.
func (h *ShaftsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_shafts"
	q := r.URL.Query()

	p, err := parsePredicates(q)
	if err != nil {
		fail(w, WrapKind(op, ErrBadRequest, err))
		return
	}
	limit, err := intParam(q, "limit", h.defaultLimit, 1, h.maxLimit)
	if err != nil {
		fail(w, WrapKind(op, ErrBadRequest, err))
		return
	}
	offset, err := intParam(q, "offset", 0, 0, -1)
	if err != nil {
		fail(w, WrapKind(op, ErrBadRequest, err))
		return
	}

	records, err := h.deps.Filter(r.Context(), p)
	if err != nil {
		fail(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, query.Page(records, offset, limit))
}

// HandleSearch handles GET /shafts/search?q=.
func (h *ShaftsHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	const op = "api.search_shafts"
	q := r.URL.Query().Get("q")
	if q == "" {
		fail(w, WrapKind(op, ErrBadRequest, fmt.Errorf("q must not be empty")))
		return
	}
	records, err := h.deps.Search(r.Context(), q)
	if err != nil {
		fail(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func parsePredicates(q url.Values) (query.Predicates, error) {
	var (
		p   query.Predicates
		err error
	)
	p.Manufacturers = list(q, "manufacturer")

	for _, v := range list(q, "club_type") {
		ct, ok := model.ParseClubType(v)
		if !ok {
			return p, fmt.Errorf("unknown club_type %q", v)
		}
		p.ClubTypes = append(p.ClubTypes, ct)
	}
	for _, v := range list(q, "flex") {
		f, ferr := normalize.Flex(v)
		if ferr != nil {
			return p, fmt.Errorf("unknown flex %q", v)
		}
		p.Flexes = append(p.Flexes, f)
	}
	if p.Launch, err = profiles(q, "launch", normalize.Launch); err != nil {
		return p, err
	}
	if p.Spin, err = profiles(q, "spin", normalize.Spin); err != nil {
		return p, err
	}

	bounds := []struct {
		key string
		dst **float64
	}{
		{"weight_min", &p.WeightMin},
		{"weight_max", &p.WeightMax},
		{"torque_min", &p.TorqueMin},
		{"torque_max", &p.TorqueMax},
		{"price_max", &p.PriceMax},
	}
	for _, b := range bounds {
		if *b.dst, err = floatParam(q, b.key); err != nil {
			return p, err
		}
	}
	return p, nil
}

// list collects a parameter given repeatedly or comma-separated.
func list(q url.Values, key string) []string {
	var out []string
	for _, raw := range q[key] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func profiles(q url.Values, key string, parse func(string) (model.Profile, bool)) ([]model.Profile, error) {
	var out []model.Profile
	for _, v := range list(q, key) {
		pr, ok := parse(v)
		if !ok {
			return nil, fmt.Errorf("unknown %s %q", key, v)
		}
		out = append(out, pr)
	}
	return out, nil
}

func floatParam(q url.Values, key string) (*float64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", key)
	}
	return &v, nil
}

// intParam parses an integer parameter within [lo, hi]; hi < 0 means unbounded.
func intParam(q url.Values, key string, def, lo, hi int) (int, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < lo || (hi >= 0 && v > hi) {
		if hi < 0 {
			return 0, fmt.Errorf("%s must be an integer >= %d", key, lo)
		}
		return 0, fmt.Errorf("%s must be an integer between %d and %d", key, lo, hi)
	}
	return v, nil
}
