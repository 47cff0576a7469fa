package dashboard

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// APIError is a non-2xx Dashboard response.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	RequestID  string
	// Errors holds the messages of the Dashboard "errors" array.
	Errors []string

	retryAfter time.Duration
}

func (e *APIError) Error() string {
	msg := http.StatusText(e.StatusCode)
	if len(e.Errors) > 0 {
		msg = strings.Join(e.Errors, "; ")
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, msg)
}

// retryable reports whether the request may be sent again. A 429 was
// rejected before processing; gateway errors may follow a committed write,
// so they are retried only for idempotent methods.
func (e *APIError) retryable() bool {
	switch e.StatusCode {
	case http.StatusTooManyRequests:
		return true
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return idempotent(e.Method)
	default:
		return false
	}
}

func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// IsNotFound reports whether err is a Dashboard 404.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// StatusCode returns the HTTP status of an APIError in err's chain, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func newAPIError(method, path, requestID string, resp *http.Response, raw []byte) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Method:     method,
		Path:       path,
		RequestID:  requestID,
		retryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), time.Now()),
	}

	var body struct {
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && len(body.Errors) > 0 {
		apiErr.Errors = body.Errors
	} else if text := strings.TrimSpace(string(raw)); text != "" && !strings.HasPrefix(text, "{") {
		apiErr.Errors = []string{text}
	}
	return apiErr
}

// parseRetryAfter accepts delay-seconds or an HTTP date. It returns -1 when
// the header is absent or invalid.
func parseRetryAfter(value string, now time.Time) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return -1
	}
	if secs, err := strconv.Atoi(value); err == nil {
		if secs < 0 {
			return -1
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
		return 0
	}
	return -1
}
