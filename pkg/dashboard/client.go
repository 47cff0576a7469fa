// Package dashboard provides the HTTP transport for the Meraki Dashboard API:
// path-template substitution, API-key authentication, 429 retry honouring
// Retry-After and Link-header pagination.
package dashboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const (
	// DefaultBaseURL is the public Dashboard API root.
	DefaultBaseURL = "https://api.meraki.com/api/v1"

	// APIKeyHeader carries the Dashboard API key.
	APIKeyHeader = "X-Cisco-Meraki-API-Key"
	// RequestIDHeader carries the per-request correlation id.
	RequestIDHeader = "X-Request-Id"

	defaultTimeout        = 30 * time.Second
	defaultMaxRetries     = 5
	defaultRetryBaseDelay = time.Second
	defaultUserAgent      = "meraki-rm"
	maxPages              = 1000
	maxErrorBody          = 64 << 10
)

// Config holds Dashboard client configuration.
type Config struct {
	// BaseURL is the API root, for example https://api.meraki.com/api/v1.
	BaseURL string
	// APIKey is sent in the X-Cisco-Meraki-API-Key header.
	APIKey string
	// Timeout is the per-request timeout. Defaults to 30s.
	Timeout time.Duration
	// MaxRetries bounds retries of rate-limited and transient failures. Defaults to 5.
	MaxRetries int
	// RetryBaseDelay is the first back-off step when no Retry-After is sent. Defaults to 1s.
	RetryBaseDelay time.Duration
	// UserAgent identifies the caller.
	UserAgent string
	// HTTPClient overrides the underlying client.
	HTTPClient *http.Client
	// Observer is called after every HTTP exchange, including retries.
	Observer func(method string, status int, elapsed time.Duration)
}

// Client executes Dashboard API requests.
type Client struct {
	http    *http.Client
	baseURL *url.URL
	cfg     Config
}

// Response is a decoded Dashboard response. For paginated lists Data holds
// the concatenation of every page.
type Response struct {
	StatusCode int
	Header     http.Header
	Data       any
	RequestID  string
}

// Records returns the response body as a list of objects. A single object is
// returned as a one-element list and an empty body as an empty list.
func (r *Response) Records() []map[string]any {
	if r == nil {
		return nil
	}
	switch data := r.Data.(type) {
	case []any:
		out := make([]map[string]any, 0, len(data))
		for _, item := range data {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	case map[string]any:
		return []map[string]any{data}
	default:
		return []map[string]any{}
	}
}

// New creates a Dashboard client.
func New(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("dashboard: invalid BaseURL %q", cfg.BaseURL)
	}
	cfg.BaseURL = base

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = defaultRetryBaseDelay
	}
	if strings.TrimSpace(cfg.UserAgent) == "" {
		cfg.UserAgent = defaultUserAgent
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{http: httpClient, baseURL: parsed, cfg: cfg}, nil
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.cfg.BaseURL
}

var placeholderRE = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// ExpandPath substitutes {placeholders} in path with escaped params values.
func ExpandPath(path string, params map[string]string) (string, error) {
	var missing []string
	expanded := placeholderRE.ReplaceAllStringFunc(path, func(m string) string {
		name := m[1 : len(m)-1]
		value, ok := params[name]
		if !ok || value == "" {
			missing = append(missing, name)
			return m
		}
		return url.PathEscape(value)
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("dashboard: unbound path parameters %s in %s", strings.Join(missing, ", "), path)
	}
	return expanded, nil
}

// Request performs one logical API call. path is a template whose
// placeholders are bound from params. GET requests returning lists follow
// Link rel=next pagination.
func (c *Client) Request(ctx context.Context, method, path string, params map[string]string, body any) (*Response, error) {
	expanded, err := ExpandPath(path, params)
	if err != nil {
		return nil, err
	}
	target := c.cfg.BaseURL + expanded

	var payload []byte
	if body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
	}

	resp, err := c.do(ctx, method, target, path, payload)
	if err != nil {
		return nil, err
	}
	if method != http.MethodGet {
		return resp, nil
	}

	items, isList := resp.Data.([]any)
	if !isList {
		return resp, nil
	}
	next := nextLink(resp.Header)
	for page := 1; next != "" && page < maxPages; page++ {
		nextURL, err := c.resolve(next)
		if err != nil {
			return nil, err
		}
		pageResp, err := c.do(ctx, http.MethodGet, nextURL, path, nil)
		if err != nil {
			return nil, fmt.Errorf("fetching page %d of %s: %w", page+1, path, err)
		}
		pageItems, _ := pageResp.Data.([]any)
		items = append(items, pageItems...)
		next = nextLink(pageResp.Header)
	}
	resp.Data = items
	return resp, nil
}

func (c *Client) resolve(link string) (string, error) {
	ref, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("dashboard: invalid pagination link %q: %w", link, err)
	}
	return c.baseURL.ResolveReference(ref).String(), nil
}

func (c *Client) do(ctx context.Context, method, target, template string, payload []byte) (*Response, error) {
	policy := newRetryPolicy(c.cfg.RetryBaseDelay)
	bo := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(c.cfg.MaxRetries)), ctx)

	requestID := uuid.NewString()
	operation := func() (*Response, error) {
		resp, err := c.once(ctx, method, target, template, payload, requestID)
		if err == nil {
			return resp, nil
		}
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			if apiErr.retryable() {
				policy.retryAfter = apiErr.retryAfter
				return nil, err
			}
			return nil, backoff.Permanent(err)
		}
		if ctx.Err() != nil {
			return nil, backoff.Permanent(ctx.Err())
		}
		if !idempotent(method) {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}

	resp, err := backoff.RetryWithData(operation, bo)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			return nil, fmt.Errorf("%s %s: %w", method, template, ctxErr)
		}
		return nil, err
	}
	return resp, nil
}

func (c *Client) once(ctx context.Context, method, target, template string, payload []byte, requestID string) (*Response, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(reqCtx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("building %s %s: %w", method, template, err)
	}
	req.Header.Set(APIKeyHeader, c.cfg.APIKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set(RequestIDHeader, requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(method, 0, started)
		return nil, fmt.Errorf("%s %s: %w", method, template, err)
	}
	defer resp.Body.Close()
	c.observe(method, resp.StatusCode, started)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, newAPIError(method, template, requestID, resp, raw)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s %s response: %w", method, template, err)
	}
	out := &Response{StatusCode: resp.StatusCode, Header: resp.Header, RequestID: requestID}
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &out.Data); err != nil {
			return nil, fmt.Errorf("decoding %s %s response: %w", method, template, err)
		}
	}
	return out, nil
}

func (c *Client) observe(method string, status int, started time.Time) {
	if c.cfg.Observer != nil {
		c.cfg.Observer(method, status, time.Since(started))
	}
}
