// Package httputil holds HTTP helpers shared by the API server and the mock
// Dashboard API.
package httputil

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// Problem is the error body returned by every handler.
type Problem struct {
	Status    int      `json:"status"`
	Title     string   `json:"title"`
	Detail    string   `json:"detail,omitempty"`
	Errors    []string `json:"errors,omitempty"`
	RequestID string   `json:"requestId,omitempty"`
}

// RespondJSON writes v as a JSON body with status.
func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// RespondProblem writes a problem body. The detail is repeated in the
// Meraki-style errors array so Dashboard clients can parse it.
func RespondProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	RespondJSON(w, status, Problem{
		Status:    status,
		Title:     http.StatusText(status),
		Detail:    detail,
		Errors:    []string{detail},
		RequestID: middleware.GetReqID(r.Context()),
	})
}

// RespondProblemf formats detail and writes a problem body.
func RespondProblemf(w http.ResponseWriter, r *http.Request, status int, format string, args ...any) {
	RespondProblem(w, r, status, fmt.Sprintf(format, args...))
}

// DecodeJSON decodes exactly one JSON object from the request body,
// rejecting unknown fields.
func DecodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return err
	}
	if decoder.More() {
		return fmt.Errorf("request must contain exactly one JSON object")
	}
	return nil
}

// RequestLogger logs one line per request at debug level.
func RequestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			started := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("elapsed", time.Since(started)).
				Str("request_id", middleware.GetReqID(r.Context())).
				Msg("http request")
		})
	}
}

// HealthHandler reports liveness.
func HealthHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

// ReadinessHandler reports readiness using check.
func ReadinessHandler(check func() error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := check(); err != nil {
			RespondProblem(w, r, http.StatusServiceUnavailable, err.Error())
			return
		}
		RespondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	})
}

// VersionHandler reports build metadata.
func VersionHandler(version, commit, buildDate string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		RespondJSON(w, http.StatusOK, map[string]string{
			"version":   version,
			"commit":    commit,
			"buildDate": buildDate,
		})
	})
}

// BearerToken extracts the token of an "Authorization: Bearer" header.
func BearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
