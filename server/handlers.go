package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/feedpulse/pulse/pkg/domain"
	"github.com/feedpulse/pulse/pkg/repository"
)

// sourceResponse is a source with its derived health status
type sourceResponse struct {
	ID                  int64      `json:"id"`
	TenantID            int64      `json:"tenant_id"`
	URL                 string     `json:"url"`
	ConsecutiveFailures int        `json:"consecutive_failures"`
	LastFailureAt       *time.Time `json:"last_failure_at,omitempty"`
	DisabledAt          *time.Time `json:"disabled_at,omitempty"`
	Status              string     `json:"status"`
	CreatedAt           time.Time  `json:"created_at"`
}

func toSourceResponse(src *domain.Source, now time.Time) sourceResponse {
	return sourceResponse{
		ID:                  src.ID,
		TenantID:            src.TenantID,
		URL:                 src.URL,
		ConsecutiveFailures: src.ConsecutiveFailures,
		LastFailureAt:       src.LastFailureAt,
		DisabledAt:          src.DisabledAt,
		Status:              string(src.Status(now)),
		CreatedAt:           src.CreatedAt,
	}
}

// statsHandler returns the read-only fetch statistics
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.scheduler.Stats(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, stats)
}

// fetchAllHandler kicks off a fetch cycle for all tenants in the background
func (s *Server) fetchAllHandler(w http.ResponseWriter, r *http.Request) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()
		if err := s.scheduler.RunForAllTenants(ctx); err != nil {
			lgr.Printf("[ERROR] triggered fetch cycle failed: %v", err)
		}
	}()
	RenderJSON(w, r, http.StatusAccepted, map[string]string{"status": "fetch started"})
}

// fetchTenantHandler runs a fetch cycle for one tenant synchronously.
// Concurrent triggers for the same tenant collapse into a single run.
func (s *Server) fetchTenantHandler(w http.ResponseWriter, r *http.Request) {
	tenantID, err := strconv.ParseInt(r.PathValue("tenant"), 10, 64)
	if err != nil {
		RenderError(w, r, fmt.Errorf("invalid tenant id"), http.StatusBadRequest)
		return
	}

	if _, err := s.tenants.GetTenant(r.Context(), tenantID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			RenderError(w, r, fmt.Errorf("tenant %d not found", tenantID), http.StatusNotFound)
			return
		}
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	_, err, _ = s.sf.Do(strconv.FormatInt(tenantID, 10), func() (interface{}, error) {
		return nil, s.scheduler.RunForTenant(r.Context(), tenantID)
	})
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "fetch completed"})
}

// createTenantHandler registers a new tenant
func (s *Server) createTenantHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	tenant := &domain.Tenant{Name: req.Name}
	if err := s.tenants.CreateTenant(r.Context(), tenant); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusCreated, tenant)
}

// listSourcesHandler returns a tenant's sources with derived status
func (s *Server) listSourcesHandler(w http.ResponseWriter, r *http.Request) {
	tenantID, err := strconv.ParseInt(r.PathValue("tenant"), 10, 64)
	if err != nil {
		RenderError(w, r, fmt.Errorf("invalid tenant id"), http.StatusBadRequest)
		return
	}

	sources, err := s.sources.GetSources(r.Context(), tenantID)
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	now := time.Now()
	resp := make([]sourceResponse, len(sources))
	for i := range sources {
		resp[i] = toSourceResponse(&sources[i], now)
	}
	RenderJSON(w, r, http.StatusOK, resp)
}

// createSourceHandler subscribes a tenant to a new source URL and triggers
// a debounced fetch so fresh items show up without waiting for the next
// scheduled cycle
func (s *Server) createSourceHandler(w http.ResponseWriter, r *http.Request) {
	tenantID, err := strconv.ParseInt(r.PathValue("tenant"), 10, 64)
	if err != nil {
		RenderError(w, r, fmt.Errorf("invalid tenant id"), http.StatusBadRequest)
		return
	}

	srcURL, err := decodeSourceURL(r)
	if err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	if _, err := s.tenants.GetTenant(r.Context(), tenantID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			RenderError(w, r, fmt.Errorf("tenant %d not found", tenantID), http.StatusNotFound)
			return
		}
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	src := &domain.Source{TenantID: tenantID, URL: srcURL}
	if err := s.sources.CreateSource(r.Context(), src); err != nil {
		RenderError(w, r, err, http.StatusConflict)
		return
	}

	s.debouncer.Trigger(tenantID)
	RenderJSON(w, r, http.StatusCreated, toSourceResponse(src, time.Now()))
}

// updateSourceHandler changes a source URL, health state is kept as is
func (s *Server) updateSourceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		RenderError(w, r, fmt.Errorf("invalid source id"), http.StatusBadRequest)
		return
	}

	srcURL, err := decodeSourceURL(r)
	if err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	src, err := s.sources.GetSource(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			RenderError(w, r, fmt.Errorf("source %d not found", id), http.StatusNotFound)
			return
		}
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	if err := s.sources.UpdateSourceURL(r.Context(), id, srcURL); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	s.debouncer.Trigger(src.TenantID)
	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "updated"})
}

// deleteSourceHandler removes a source, its items are cascade-deleted
func (s *Server) deleteSourceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		RenderError(w, r, fmt.Errorf("invalid source id"), http.StatusBadRequest)
		return
	}

	if err := s.sources.DeleteSource(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			RenderError(w, r, fmt.Errorf("source %d not found", id), http.StatusNotFound)
			return
		}
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}

// enableSourceHandler re-enables a disabled source, clearing its health state
func (s *Server) enableSourceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		RenderError(w, r, fmt.Errorf("invalid source id"), http.StatusBadRequest)
		return
	}

	src, err := s.sources.GetSource(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			RenderError(w, r, fmt.Errorf("source %d not found", id), http.StatusNotFound)
			return
		}
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	src.ReEnable()
	if err := s.sources.UpdateSourceHealth(r.Context(), src); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	s.debouncer.Trigger(src.TenantID)
	RenderJSON(w, r, http.StatusOK, toSourceResponse(src, time.Now()))
}

// decodeSourceURL reads and validates the url field of a source mutation
func decodeSourceURL(r *http.Request) (string, error) {
	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", fmt.Errorf("invalid request body")
	}
	if req.URL == "" {
		return "", fmt.Errorf("url is required")
	}
	parsed, err := url.Parse(req.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("invalid url %q", req.URL)
	}
	return req.URL, nil
}
