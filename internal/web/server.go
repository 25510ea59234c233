package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/vbonduro/taptime/internal/service"
)

type Server struct {
	service *service.PlannerService
	router  *chi.Mux
	server  *http.Server
	logger  *slog.Logger
}

type Options struct {
	Addr         string
	CORSOrigins  []string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func NewServer(svc *service.PlannerService, opts Options, logger *slog.Logger) *Server {
	s := &Server{
		service: svc,
		router:  chi.NewRouter(),
		logger:  logger,
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(func(next http.Handler) http.Handler { return requestLogger(logger, next) })
	s.router.Use(middleware.Recoverer)
	s.router.Use(securityHeaders)
	if len(opts.CORSOrigins) > 0 {
		s.router.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}
	s.registerRoutes()

	s.server = &http.Server{
		Addr:         opts.Addr,
		Handler:      s,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}
	return s
}

func (s *Server) registerRoutes() {
	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	s.router.Route("/locations", func(r chi.Router) {
		r.Get("/", s.handleListLocations)
		r.Post("/", s.handleAddAt)
		r.Delete("/", s.handleClearUnlocked)
		r.Post("/search-result", s.handleAddFromSearchResult)
		r.Post("/query", s.handleAddByQuery)
		r.Delete("/{id}", s.handleRemoveLocation)
		r.Post("/{id}/lock", s.handleToggleLock)
		r.Put("/{id}/coordinate", s.handleMoveLocation)
	})

	s.router.Get("/search", s.handleSearch)
	s.router.Get("/autocomplete", s.handleAutocomplete)

	s.router.Route("/schedule", func(r chi.Router) {
		r.Get("/", s.handleView)
		r.Put("/pivot", s.handleSetPivot)
		r.Put("/anchor", s.handleSetAnchor)
		r.Get("/share", s.handleShare)
	})

	s.router.Route("/meetings", func(r chi.Router) {
		r.Get("/", s.handleListMeetings)
		r.Post("/", s.handleSaveMeeting)
		r.Post("/import", s.handleImportMeetings)
		r.Post("/{id}/open", s.handleOpenMeeting)
		r.Delete("/{id}", s.handleDeleteMeeting)
	})
}

// securityHeaders adds defensive HTTP response headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) ListenAndServe() error {
	s.logger.Info("starting server", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
