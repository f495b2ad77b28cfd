package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

const probeTimeout = 3 * time.Second

// HealthCheck is one dependency probed by /ready and /health. A failing
// critical check takes the service down; a failing non-critical check only
// degrades it.
type HealthCheck struct {
	Name     string
	Critical bool
	Probe    func(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	checks  []HealthCheck
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(version string, checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks, version: version}
}

// Health statuses.
const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
	StatusDown     = "down"
)

// HealthResponse is the JSON response for /live, /ready and /health.
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
	Error   string `json:"error,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    StatusOK,
		Timestamp: time.Now().UTC(),
	})
}

// Ready is the readiness probe. Only critical checks run: 200 if all pass,
// 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status, _ := h.run(r.Context(), true)

	code := http.StatusOK
	if status == StatusDown {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
	})
}

// Health runs every check concurrently and reports each component with its
// latency. Degraded is still served with 200.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, components := h.run(r.Context(), false)

	code := http.StatusOK
	if status == StatusDown {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now().UTC(),
	})
}

func (h *HealthHandler) run(ctx context.Context, criticalOnly bool) (string, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	var (
		mu         sync.Mutex
		wg         sync.WaitGroup
		overall    = StatusOK
		components = make(map[string]CompStatus, len(h.checks))
	)
	for _, c := range h.checks {
		if criticalOnly && !c.Critical {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()

			start := time.Now()
			err := c.Probe(ctx)
			comp := CompStatus{Status: StatusOK, Latency: time.Since(start).String()}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				comp = CompStatus{Status: StatusDown, Error: err.Error()}
				switch {
				case c.Critical:
					overall = StatusDown
				case overall == StatusOK:
					overall = StatusDegraded
				}
			}
			components[c.Name] = comp
		}()
	}
	wg.Wait()

	return overall, components
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
