package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jinchengKuang/jay-kuang/internal/contact"
)

// Config holds server configuration.
type Config struct {
	Port     int
	SiteDir  string // directory containing the generated site
	AllowAll bool   // allow all CORS origins (dev mode)
}

// Server serves the generated portfolio site and the contact API.
type Server struct {
	cfg        Config
	store      *contact.Store
	submitter  *contact.Submitter
	toasts     contact.Toasts
	reload     *ReloadHub
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. reload may be nil when live reload is disabled.
func New(cfg Config, store *contact.Store, submitter *contact.Submitter, toasts contact.Toasts, reload *ReloadHub) *Server {
	s := &Server{
		cfg:       cfg,
		store:     store,
		submitter: submitter,
		toasts:    toasts,
		reload:    reload,
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	if s.store != nil && s.submitter != nil {
		contact.RegisterRoutes(r, s.store, s.submitter, s.toasts)
	}

	if s.reload != nil {
		r.Get("/livereload", s.reload.Handler())
	}

	// Everything else is the generated site.
	r.Get("/*", s.serveSite)

	return r
}

// serveSite serves files from the generated site directory, with a
// directory-traversal guard and index.html at the root.
func (s *Server) serveSite(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/")
	if path == "" {
		path = "index.html"
	}
	if strings.Contains(path, "..") {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	http.ServeFile(w, r, filepath.Join(s.cfg.SiteDir, filepath.FromSlash(path)))
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("folio server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
