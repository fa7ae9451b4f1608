package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/translator"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

type statsProvider interface {
	Stats() []translator.Stats
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	engines statsProvider
	version string
}

// NewHealthHandler creates a HealthHandler. db may be nil when the
// translation log is disabled.
func NewHealthHandler(db dbPinger, engines statsProvider, version string) *HealthHandler {
	return &HealthHandler{db: db, engines: engines, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: every translator must be serving and the
// database, if configured, must answer a ping.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if !h.translatorsServing() || (h.db != nil && h.db.Ping(ctx) != nil) {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check with per-component status and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := "ok"

	if h.db == nil {
		components["database"] = CompStatus{Status: "disabled"}
	} else {
		start := time.Now()
		err := h.db.Ping(ctx)
		latency := time.Since(start)

		if err != nil {
			components["database"] = CompStatus{Status: "down"}
			overallStatus = "down"
		} else {
			components["database"] = CompStatus{
				Status:  "ok",
				Latency: latency.String(),
			}
		}
	}

	if h.engines != nil {
		for _, s := range h.engines.Stats() {
			status := "ok"
			if s.State != translator.StateServing.String() {
				status = "down"
				overallStatus = "down"
			}
			components["translator_"+s.Direction.String()] = CompStatus{Status: status}
		}
	}

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) translatorsServing() bool {
	if h.engines == nil {
		return true
	}
	for _, s := range h.engines.Stats() {
		if s.State != translator.StateServing.String() {
			return false
		}
	}
	return true
}
