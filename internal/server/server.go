// Package server exposes the extracted revenue tables over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ukaji3/rvustruct/pkg/rvustruct"
	"github.com/ukaji3/rvustruct/pkg/rvustruct/models"
	"github.com/ukaji3/rvustruct/pkg/rvustruct/report"
)

// TablesLoader is the part of rvustruct.Loader the server depends on.
type TablesLoader interface {
	Load(ctx context.Context, path string) (*models.Tables, error)
	Stats() rvustruct.CacheStats
}

// Server serves one revenue export.
type Server struct {
	path     string
	loader   TablesLoader
	logger   *slog.Logger
	registry *prometheus.Registry
	router   chi.Router
}

// New creates a Server reading path through loader. Metrics are registered on registry.
func New(path string, loader TablesLoader, logger *slog.Logger, registry *prometheus.Registry) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		path:     path,
		loader:   loader,
		logger:   logger,
		registry: registry,
	}
	s.registerMetrics()
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get("/health", s.handleHealth)
		r.Get("/tables", s.handleTables)
		r.Get("/report", s.handleReport)
		r.Get("/departments", s.handleDepartments)
		r.Get("/departments/{name}/services", s.handleServices)
	})

	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return r
}

func (s *Server) registerMetrics() {
	s.registry.MustRegister(
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "rvustruct_cache_hits_total",
			Help: "Loads served from the extraction cache.",
		}, func() float64 { return float64(s.loader.Stats().Hits) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "rvustruct_cache_misses_total",
			Help: "Loads that re-extracted the revenue export.",
		}, func() float64 { return float64(s.loader.Stats().Misses) }),
	)
}

// errorResponse is the JSON body of a failed request.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) load(w http.ResponseWriter, r *http.Request) (*models.Tables, bool) {
	tables, err := s.loader.Load(r.Context(), s.path)
	if err != nil {
		s.logger.Error("load failed",
			slog.String("file", s.path),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err))
		status := http.StatusInternalServerError
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusServiceUnavailable
		}
		render.Status(r, status)
		render.JSON(w, r, errorResponse{Error: err.Error()})
		return nil, false
	}
	return tables, true
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().UTC(),
		"cache":  s.loader.Stats(),
	})
}

func (s *Server) handleTables(w http.ResponseWriter, r *http.Request) {
	tables, ok := s.load(w, r)
	if !ok {
		return
	}
	render.JSON(w, r, tables)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	tables, ok := s.load(w, r)
	if !ok {
		return
	}
	render.JSON(w, r, report.Build(tables))
}

func (s *Server) handleDepartments(w http.ResponseWriter, r *http.Request) {
	tables, ok := s.load(w, r)
	if !ok {
		return
	}
	render.JSON(w, r, report.Departments(tables.Services))
}

func (s *Server) handleServices(w http.ResponseWriter, r *http.Request) {
	tables, ok := s.load(w, r)
	if !ok {
		return
	}
	name, err := departmentParam(r)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "invalid department: " + err.Error()})
		return
	}
	services := report.Drilldown(tables.Services, name)
	if len(services) == 0 {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, errorResponse{Error: "unknown department: " + name})
		return
	}
	render.JSON(w, r, services)
}

// departmentParam returns the decoded {name} segment. chi routes on RawPath when
// the request path carries escapes such as %2F, leaving the parameter encoded.
func departmentParam(r *http.Request) (string, error) {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name, nil
	}
	return url.PathUnescape(name)
}
