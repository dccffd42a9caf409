package rest

import (
	"net/http"
	"time"
)

// sessionCounter reports how many analysis sessions are live.
type sessionCounter interface {
	Len() int
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	sessions sessionCounter
	version  string
	started  time.Time
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(sessions sessionCounter, version string) *HealthHandler {
	return &HealthHandler{sessions: sessions, version: version, started: time.Now()}
}

// HealthResponse is the JSON response for /live and /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version,omitempty"`
	Uptime    string    `json:"uptime,omitempty"`
	Sessions  *int      `json:"sessions,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health reports the version, uptime and number of live sessions. The
// external lookup services are not probed: an outage degrades results to
// easy words and "Definition not found." but never takes the API down.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	n := h.sessions.Len()
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Version:   h.version,
		Uptime:    time.Since(h.started).Round(time.Second).String(),
		Sessions:  &n,
		Timestamp: time.Now(),
	})
}
