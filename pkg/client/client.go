// Package client provides a typed HTTP client SDK for the meraki-rm API.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goccy/go-json"

	"github.com/ansible-network/meraki-rm-sub001/pkg/types"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3
	resourcesPath     = "/v1/resources"
	factsPath         = "/v1/facts"
	maxErrorBody      = 64 << 10
)

// Config holds client configuration.
type Config struct {
	// BaseURL is the root URL of the API (for example: http://localhost:8080).
	BaseURL string
	// Token is the bearer token used for API requests.
	Token string
	// Timeout is the per-request timeout. Defaults to 30s.
	Timeout time.Duration
	// MaxRetries is the number of retry attempts for transient errors.
	MaxRetries int
	// RetryBaseDelay is the first back-off interval. Defaults to 500ms.
	RetryBaseDelay time.Duration
	// HTTPClient overrides the transport.
	HTTPClient *http.Client
}

// Client is the typed HTTP SDK for the meraki-rm API.
type Client struct {
	http    *http.Client
	baseURL string
	cfg     Config
}

// Error is a non-2xx API response.
type Error struct {
	StatusCode int
	Method     string
	Path       string
	Detail     string
	RequestID  string
}

func (e *Error) Error() string {
	detail := e.Detail
	if detail == "" {
		detail = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, detail)
}

// IsStatus reports whether err is an API error with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// New creates a new client.
func New(cfg Config) (*Client, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		return nil, fmt.Errorf("client: BaseURL is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("client: invalid BaseURL: %w", err)
	}
	cfg.BaseURL = strings.TrimRight(baseURL, "/")

	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.RetryBaseDelay == 0 {
		cfg.RetryBaseDelay = 500 * time.Millisecond
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{http: httpClient, baseURL: cfg.BaseURL, cfg: cfg}, nil
}

// ListResources returns every managed resource class.
func (c *Client) ListResources(ctx context.Context) (*types.ResourceList[types.ResourceType], error) {
	var result types.ResourceList[types.ResourceType]
	if err := c.do(ctx, http.MethodGet, resourcesPath, nil, &result); err != nil {
		return nil, fmt.Errorf("listing resources: %w", err)
	}
	return &result, nil
}

// GetResource returns one resource class with its config schema.
func (c *Client) GetResource(ctx context.Context, name string) (*types.Resource[types.ResourceType], error) {
	resourceName := strings.TrimSpace(name)
	if resourceName == "" {
		return nil, fmt.Errorf("resource name is required")
	}

	var result types.Resource[types.ResourceType]
	path := fmt.Sprintf("%s/%s", resourcesPath, url.PathEscape(resourceName))
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, fmt.Errorf("getting resource %q: %w", resourceName, err)
	}
	return &result, nil
}

// Reconcile runs one invocation of a resource module.
func (c *Client) Reconcile(
	ctx context.Context,
	name string,
	req types.ReconcileRequest,
) (*types.Resource[types.ReconcileResult], error) {
	resourceName := strings.TrimSpace(name)
	if resourceName == "" {
		return nil, fmt.Errorf("resource name is required")
	}
	if strings.TrimSpace(req.Scope) == "" {
		return nil, fmt.Errorf("scope is required")
	}

	var result types.Resource[types.ReconcileResult]
	path := fmt.Sprintf("%s/%s/reconcile", resourcesPath, url.PathEscape(resourceName))
	if err := c.do(ctx, http.MethodPost, path, req, &result); err != nil {
		return nil, fmt.Errorf("reconciling %q: %w", resourceName, err)
	}
	return &result, nil
}

// Facts gathers Dashboard inventory.
func (c *Client) Facts(ctx context.Context, req types.FactsRequest) (*types.Resource[types.Facts], error) {
	var result types.Resource[types.Facts]
	if err := c.do(ctx, http.MethodPost, factsPath, req, &result); err != nil {
		return nil, fmt.Errorf("gathering facts: %w", err)
	}
	return &result, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		payload = encoded
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.cfg.RetryBaseDelay
	exp.MaxElapsedTime = 0
	bo := backoff.WithContext(backoff.WithMaxRetries(exp, uint64(c.cfg.MaxRetries)), ctx)

	return backoff.Retry(func() error {
		err := c.once(ctx, method, path, payload, out)
		if err == nil {
			return nil
		}
		var apiErr *Error
		if errors.As(err, &apiErr) && !retryable(method, apiErr.StatusCode) {
			return backoff.Permanent(err)
		}
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		if apiErr == nil && method != http.MethodGet {
			return backoff.Permanent(err)
		}
		return err
	}, bo)
}

func (c *Client) once(ctx context.Context, method, path string, payload []byte, out any) error {
	reqCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(reqCtx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return newError(method, path, resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

type problem struct {
	Detail    string `json:"detail"`
	RequestID string `json:"requestId"`
}

func newError(method, path string, status int, raw []byte) *Error {
	apiErr := &Error{StatusCode: status, Method: method, Path: path}
	var p problem
	if err := json.Unmarshal(raw, &p); err == nil {
		apiErr.Detail = p.Detail
		apiErr.RequestID = p.RequestID
	} else {
		apiErr.Detail = strings.TrimSpace(string(raw))
	}
	return apiErr
}

// retryable reports whether a failed call may be sent again. A reconcile
// that hit a gateway error may already have changed the Dashboard, so only
// reads retry those.
func retryable(method string, status int) bool {
	switch status {
	case http.StatusTooManyRequests:
		return true
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return method == http.MethodGet
	}
	return false
}
