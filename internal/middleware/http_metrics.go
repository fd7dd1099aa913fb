// Package middleware provides HTTP middleware components for the API server.
package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// normalizePath converts paths with dynamic segments to route patterns to prevent
// cardinality explosion in metrics. This maps paths like /terms/123 to /terms/{id}.
func normalizePath(path string) string {
	// Exact matches for static routes (no normalization needed)
	staticRoutes := map[string]bool{
		"/":                     true,
		"/translate":            true,
		"/translate/reverse":    true,
		"/translate/variations": true,
		"/translate/search":     true,
		"/terms":                true,
		"/food/recommendations": true,
		"/food/search":          true,
		"/food/hubs":            true,
		"/cultural/search":      true,
		"/cultural/festivals":   true,
		"/users":                true,
		"/users/login":          true,
		"/users/preferences":    true,
		"/users/favorites":      true,
		"/users/history":        true,
		"/admin/content":        true,
		"/health":               true,
		"/ready":                true,
		"/metrics":              true,
	}

	if staticRoutes[path] {
		return path
	}

	// /terms/{id}
	if strings.HasPrefix(path, "/terms/") {
		parts := strings.Split(path, "/")
		if len(parts) == 3 && parts[2] != "" {
			return "/terms/{id}"
		}
	}

	// /food/category/{category} and /food/vendors/{id}/safety
	if strings.HasPrefix(path, "/food/") {
		parts := strings.Split(path, "/")
		if len(parts) == 4 && parts[2] == "category" && parts[3] != "" {
			return "/food/category/{category}"
		}
		if len(parts) == 5 && parts[2] == "vendors" && parts[4] == "safety" {
			return "/food/vendors/{id}/safety"
		}
	}

	// /cultural/regions/{region} and /cultural/etiquette/{topic}
	if strings.HasPrefix(path, "/cultural/") {
		parts := strings.Split(path, "/")
		if len(parts) == 4 && parts[3] != "" {
			switch parts[2] {
			case "regions":
				return "/cultural/regions/{region}"
			case "etiquette":
				return "/cultural/etiquette/{topic}"
			}
		}
	}

	// /users/favorites/{id}
	if strings.HasPrefix(path, "/users/favorites/") {
		parts := strings.Split(path, "/")
		if len(parts) == 4 && parts[3] != "" {
			return "/users/favorites/{id}"
		}
	}

	// Fallback: return as-is for unknown patterns
	// This ensures we don't accidentally break metrics for new routes
	return path
}

// metricsResponseWriter wraps http.ResponseWriter to capture status code and response size.
type metricsResponseWriter struct {
	http.ResponseWriter
	statusCode  int
	size        int64
	wroteHeader bool
}

// WriteHeader captures the status code before writing it.
func (mrw *metricsResponseWriter) WriteHeader(code int) {
	if mrw.wroteHeader {
		return
	}
	mrw.statusCode = code
	mrw.wroteHeader = true
	mrw.ResponseWriter.WriteHeader(code)
}

// Write captures the response size and writes the data.
func (mrw *metricsResponseWriter) Write(b []byte) (int, error) {
	n, err := mrw.ResponseWriter.Write(b)
	mrw.size += int64(n)
	return n, err
}

// newMetricsResponseWriter creates a new metricsResponseWriter with default 200 status.
func newMetricsResponseWriter(w http.ResponseWriter) *metricsResponseWriter {
	return &metricsResponseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

// HTTPMetrics is a middleware that records HTTP request metrics.
// It captures duration, request/response sizes, and request counts.
// Health check endpoints (/health, /ready) are excluded from metrics to avoid cardinality issues.
func HTTPMetrics(metrics *Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Exclude health check endpoints from metrics
			if r.URL.Path == "/health" || r.URL.Path == "/ready" {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()

			// Wrap response writer to capture status and size
			mrw := newMetricsResponseWriter(w)

			// Get request size from Content-Length header
			requestSize := int64(0)
			if contentLength := r.Header.Get("Content-Length"); contentLength != "" {
				if size, err := strconv.ParseInt(contentLength, 10, 64); err == nil {
					requestSize = size
				}
			}

			// Call the next handler
			next.ServeHTTP(mrw, r)

			// Calculate duration in seconds
			duration := time.Since(start).Seconds()

			// Normalize path to prevent cardinality explosion
			normalizedPath := normalizePath(r.URL.Path)

			// Record metrics
			metrics.ObserveHTTPRequest(
				r.Method,
				normalizedPath,
				strconv.Itoa(mrw.statusCode),
				duration,
				requestSize,
				mrw.size,
			)
		})
	}
}
