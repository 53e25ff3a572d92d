package rest

import (
	"net/http"
	"time"

	"github.com/cours-de-latin/ithkuil"
)

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	store   *ithkuil.DictionaryStore
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(store *ithkuil.DictionaryStore, version string) *HealthHandler {
	return &HealthHandler{store: store, version: version}
}

// HealthResponse is the JSON response for /api/health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Health reports the dictionary snapshot. The engine glosses without a
// dictionary, so an empty one degrades rather than fails the service.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	stats := h.store.Load().Stats()
	dict := CompStatus{Status: "ok"}
	overall := "ok"
	if stats.Affixes == 0 && stats.Roots == 0 {
		dict = CompStatus{Status: "empty", Detail: "glosses show raw consonant forms"}
		overall = "degraded"
	}
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: map[string]CompStatus{"dictionary": dict},
		Timestamp:  time.Now(),
	})
}
