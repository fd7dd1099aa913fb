package api

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is implemented by components that can report their health.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandlers provides liveness and readiness endpoints. Checkers are
// optional: the server runs healthily on in-memory stores with no database
// or Redis configured.
type HealthHandlers struct {
	checkers map[string]HealthChecker
}

// NewHealthHandlers creates the health handler set from named checkers.
// Nil checkers are skipped.
func NewHealthHandlers(checkers map[string]HealthChecker) *HealthHandlers {
	active := make(map[string]HealthChecker, len(checkers))
	for name, c := range checkers {
		if c != nil {
			active[name] = c
		}
	}
	return &HealthHandlers{checkers: active}
}

// healthResponse is the JSON body for both probes.
type healthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks"`
	Timestamp string            `json:"timestamp"`
}

// Health handles GET /health (liveness). If the process can respond, it is
// alive; dependencies are not consulted.
func (h *HealthHandlers) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	WriteSuccess(w, healthResponse{
		Status:    "healthy",
		Checks:    map[string]string{"runtime": "ok"},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Ready handles GET /ready (readiness). Every configured checker must pass;
// a failing dependency turns the response into a 503.
func (h *HealthHandlers) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]string, len(h.checkers))
	ready := true
	for name, checker := range h.checkers {
		if err := checker.HealthCheck(ctx); err != nil {
			checks[name] = "error: " + err.Error()
			ready = false
		} else {
			checks[name] = "ok"
		}
	}

	resp := healthResponse{
		Status:    "ready",
		Checks:    checks,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if !ready {
		resp.Status = "unavailable"
		WriteJSON(w, http.StatusServiceUnavailable, Response{Success: false, Data: resp, Error: ErrCodeInternal, Message: "one or more dependencies are unavailable"})
		return
	}
	WriteSuccess(w, resp)
}
