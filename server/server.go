// Package server exposes the trigger and admin HTTP surface: run-now fetch
// triggers, stats, and source management with a debounced post-mutation
// fetch. The heavy lifting lives in the scheduler, this layer is a thin JSON
// shell around it.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"golang.org/x/sync/singleflight"

	"github.com/feedpulse/pulse/pkg/domain"
)

//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler
//go:generate moq -out mocks/source_store.go -pkg mocks -skip-ensure -fmt goimports . SourceStore
//go:generate moq -out mocks/tenant_store.go -pkg mocks -skip-ensure -fmt goimports . TenantStore

// Scheduler interface for on-demand fetch operations
type Scheduler interface {
	RunForTenant(ctx context.Context, tenantID int64) error
	RunForAllTenants(ctx context.Context) error
	Stats(ctx context.Context) (*domain.Stats, error)
}

// SourceStore interface for source management operations
type SourceStore interface {
	CreateSource(ctx context.Context, src *domain.Source) error
	GetSource(ctx context.Context, id int64) (*domain.Source, error)
	GetSources(ctx context.Context, tenantID int64) ([]domain.Source, error)
	UpdateSourceURL(ctx context.Context, id int64, url string) error
	UpdateSourceHealth(ctx context.Context, src *domain.Source) error
	DeleteSource(ctx context.Context, id int64) error
}

// TenantStore interface for tenant lookups
type TenantStore interface {
	CreateTenant(ctx context.Context, tenant *domain.Tenant) error
	GetTenant(ctx context.Context, id int64) (*domain.Tenant, error)
}

// Config holds server configuration
type Config struct {
	Listen  string
	Timeout time.Duration
	Version string
	Debug   bool
}

// Server represents HTTP server instance
type Server struct {
	config    Config
	scheduler Scheduler
	sources   SourceStore
	tenants   TenantStore
	debouncer *Debouncer
	sf        singleflight.Group

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// New initializes a new server instance. Mutations to sources trigger a
// debounced fetch for the owning tenant, a burst of changes collapses into
// a single fetch cycle.
func New(cfg Config, scheduler Scheduler, sources SourceStore, tenants TenantStore) *Server {
	s := &Server{
		config:    cfg,
		scheduler: scheduler,
		sources:   sources,
		tenants:   tenants,
		router:    routegroup.New(http.NewServeMux()),
	}
	s.debouncer = NewDebouncer(2*time.Second, func(tenantID int64) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := s.scheduler.RunForTenant(ctx, tenantID); err != nil {
			lgr.Printf("[ERROR] triggered fetch failed for tenant %d: %v", tenantID, err)
		}
	})

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	log.Printf("[INFO] starting server on %s", s.config.Listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         s.config.Listen,
		Handler:      s.router,
		ReadTimeout:  s.config.Timeout,
		WriteTimeout: s.config.Timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("pulse", "feedpulse", s.config.Version))
	s.router.Use(rest.Ping)

	if s.config.Debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /stats", s.statsHandler)

		r.HandleFunc("POST /fetch", s.fetchAllHandler)
		r.HandleFunc("POST /fetch/{tenant}", s.fetchTenantHandler)

		r.HandleFunc("POST /tenants", s.createTenantHandler)
		r.HandleFunc("GET /tenants/{tenant}/sources", s.listSourcesHandler)
		r.HandleFunc("POST /tenants/{tenant}/sources", s.createSourceHandler)

		r.HandleFunc("PUT /sources/{id}", s.updateSourceHandler)
		r.HandleFunc("DELETE /sources/{id}", s.deleteSourceHandler)
		r.HandleFunc("POST /sources/{id}/enable", s.enableSourceHandler)
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.config.Version,
		"time":    time.Now().UTC(),
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
