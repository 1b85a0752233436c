// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/okian/shaftdb/pkg/logger"
)

// Service identity reported by GET /.
const (
	ServiceName    = "Golf Shaft Analytics API"
	DefaultVersion = "0.1.0"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	ShaftsDependencies
	CompareDependencies
	StatsDependencies
	AdminDependencies
}

// Server wires HTTP routes for the catalog API.
type Server struct {
	router *chi.Mux
	logger logger.Logger

	defaultLimit int
	maxLimit     int
	maxCompare   int
	timeout      time.Duration
	version      string

	healthHandler  *HealthHandler
	shaftsHandler  *ShaftsHandler
	compareHandler *CompareHandler
	statsHandler   *StatsHandler
	adminHandler   *AdminHandler
}

// NewServer creates a new API server with all handlers and routes.
func NewServer(deps Dependencies, opts ...Option) *Server {
	s := &Server{
		router:       chi.NewRouter(),
		defaultLimit: DefaultPageLimit,
		maxLimit:     DefaultMaxPageLimit,
		maxCompare:   DefaultMaxCompare,
		timeout:      DefaultRequestTimeout,
		version:      DefaultVersion,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.healthHandler = NewHealthHandler(deps)
	s.shaftsHandler = NewShaftsHandler(deps, s.defaultLimit, s.maxLimit)
	s.compareHandler = NewCompareHandler(deps, s.maxCompare)
	s.statsHandler = NewStatsHandler(deps)
	s.adminHandler = NewAdminHandler(deps, s.logger)

	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// Router returns the underlying chi router. Further routes may be mounted on it.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// ServeHTTP makes Server an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(s.timeout))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Get("/", MetricsMiddleware(s.handleInfo, "root"))
	s.router.Get("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	s.router.Get("/metrics", s.healthHandler.HandleMetrics)

	s.router.Route("/shafts", func(r chi.Router) {
		r.Get("/", MetricsMiddleware(s.shaftsHandler.HandleList, "shafts"))
		r.Get("/search", MetricsMiddleware(s.shaftsHandler.HandleSearch, "shafts_search"))
		r.Get("/compare", MetricsMiddleware(s.compareHandler.HandleCompare, "shafts_compare"))
		r.Get("/progression", MetricsMiddleware(s.compareHandler.HandleProgression, "shafts_progression"))
	})

	s.router.Get("/manufacturers", MetricsMiddleware(s.statsHandler.HandleManufacturers, "manufacturers"))
	s.router.Get("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	s.router.Post("/admin/reload", MetricsMiddleware(s.adminHandler.HandleReload, "admin_reload"))
}

type infoResponse struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

func (s *Server) handleInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, infoResponse{
		Name:    ServiceName,
		Version: s.version,
		Endpoints: []string{
			"/shafts", "/shafts/search", "/shafts/compare", "/shafts/progression",
			"/manufacturers", "/stats",
		},
	})
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// fail writes err with the status and code its kind maps to.
func fail(w http.ResponseWriter, err error) {
	st, code := status(err)
	writeError(w, st, code, err)
}
