package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Jonathangadeaharder/LangPlug-sub005/internal/cache"
)

const pingTimeout = 3 * time.Second

// pinger is the database dependency of the health checks.
type pinger interface {
	Ping(ctx context.Context) error
}

// statsSource exposes the dictionary cache counters for the health report.
type statsSource interface {
	Stats() cache.Stats
}

// HealthHandler serves the liveness, readiness, and health endpoints.
// Readiness gates on the database only; the cache degrades to direct store
// access and is reported informationally.
type HealthHandler struct {
	db      pinger
	cache   statsSource
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db pinger, cache statsSource, version string) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, version: version}
}

// HealthResponse is the JSON response for /ready and /health.
type HealthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

// ComponentHealth is the status of one named dependency.
type ComponentHealth struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. 200 when the database answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	db := h.pingDatabase(ctx)
	status := "ok"
	code := http.StatusOK
	if db.Status != "ok" {
		status = "down"
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:     status,
		Components: map[string]ComponentHealth{"database": db},
		Timestamp:  time.Now(),
	})
}

// Health is the full report: database with ping latency, dictionary cache
// counters, and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	components := map[string]ComponentHealth{
		"database":         h.pingDatabase(ctx),
		"dictionary_cache": h.cacheHealth(),
	}

	status := "ok"
	code := http.StatusOK
	if components["database"].Status != "ok" {
		status = "down"
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) pingDatabase(ctx context.Context) ComponentHealth {
	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return ComponentHealth{Status: "down"}
	}
	return ComponentHealth{
		Status:  "ok",
		Latency: time.Since(start).String(),
	}
}

// cacheHealth reports the cache counters. Backend errors mean lookups fell
// through to the store, so the component is degraded, never down.
func (h *HealthHandler) cacheHealth() ComponentHealth {
	stats := h.cache.Stats()
	status := "ok"
	if stats.Errors > 0 {
		status = "degraded"
	}
	return ComponentHealth{
		Status: status,
		Detail: fmt.Sprintf("hits=%d misses=%d errors=%d", stats.Hits, stats.Misses, stats.Errors),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
