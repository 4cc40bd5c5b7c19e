// Package web provides the HTTP API for validating, normalizing and
// importing Camtrap DP resources.
package web

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/camtraplabs/camtrapdp/internal/camtrap"
	"github.com/camtraplabs/camtrapdp/internal/config"
	"github.com/camtraplabs/camtrapdp/internal/store"
)

// Store is the persistence surface the handlers need. Satisfied by
// *store.Store; tests substitute a fake.
type Store interface {
	ImportDeployments(ctx context.Context, ds camtrap.Deployments) (store.Import, error)
	ImportMedia(ctx context.Context, ms camtrap.MediaSet) (store.Import, error)
	ImportObservations(ctx context.Context, obs camtrap.Observations) (store.Import, error)
	RowCounts(ctx context.Context) (map[string]int64, error)
}

// Server is the HTTP server for the record conversion API.
type Server struct {
	store       Store
	router      *chi.Mux
	server      *http.Server
	maxBodySize int64
}

// NewServer creates a server bound to the configured address.
func NewServer(st Store, cfg *config.Config) *Server {
	s := &Server{
		store:       st,
		router:      chi.NewRouter(),
		maxBodySize: cfg.Upload.MaxFileSize,
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	s.router.Get("/health", s.handleHealth)
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/resources", s.handleListResources)
		r.Get("/template/{resource}", s.handleTemplate)
		r.Get("/counts", s.handleCounts)

		r.Post("/validate/{resource}", s.handleValidate)
		r.Post("/normalize/{resource}", s.handleNormalize)
		r.Post("/import/{resource}", s.handleImport)
	})

	s.server = &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the server until Shutdown or failure.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
