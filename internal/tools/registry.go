// Package tools provides MCP tool execution backed by the reconciler.
package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/ansible-network/meraki-rm-sub001/internal/catalog"
	"github.com/ansible-network/meraki-rm-sub001/internal/config"
	"github.com/ansible-network/meraki-rm-sub001/internal/facts"
	"github.com/ansible-network/meraki-rm-sub001/internal/policy"
	"github.com/ansible-network/meraki-rm-sub001/internal/reconcile"
	"github.com/ansible-network/meraki-rm-sub001/internal/runner"
	"github.com/ansible-network/meraki-rm-sub001/pkg/dashboard"
)

// Tool names besides the per-resource tools.
const (
	ToolPrefix        = "meraki_"
	DescribeToolsName = "describe_tools"
	FactsToolName     = "meraki_facts"
)

// ToolName returns the tool name of a resource class.
func ToolName(d *catalog.Descriptor) string {
	return ToolPrefix + d.Name
}

// Executor runs live reconciles.
type Executor interface {
	Execute(ctx context.Context, req runner.Request) (*reconcile.Result, error)
}

// Config configures a Runner.
type Config struct {
	// Mode is config.MCPModeTask or config.MCPModeLive.
	Mode string
	// Policy gates live reconciles.
	Policy policy.Policy
}

// Runner executes MCP tool calls.
type Runner struct {
	catalog  *catalog.Catalog
	executor Executor
	facts    facts.Client
	mode     string
	policy   policy.Policy
}

// ToolError carries an HTTP-style status code and message for tool failures.
type ToolError struct {
	statusCode int
	message    string
}

// Error implements error.
func (e *ToolError) Error() string {
	if e == nil {
		return ""
	}
	return strings.TrimSpace(e.message)
}

// StatusCode returns the attached status code.
func (e *ToolError) StatusCode() int {
	if e == nil || e.statusCode == 0 {
		return http.StatusInternalServerError
	}
	return e.statusCode
}

// NewRunner creates a tool runner. Live mode needs an executor; facts
// tools need a facts client in live mode.
func NewRunner(cat *catalog.Catalog, cfg Config, executor Executor, factsClient facts.Client) (*Runner, error) {
	if cat == nil {
		cat = catalog.Default()
	}
	mode := strings.ToLower(strings.TrimSpace(cfg.Mode))
	if mode == "" {
		mode = config.MCPModeTask
	}
	switch mode {
	case config.MCPModeTask:
	case config.MCPModeLive:
		if executor == nil {
			return nil, fmt.Errorf("live tool mode requires a dashboard client")
		}
	default:
		return nil, fmt.Errorf("unknown tool mode %q", cfg.Mode)
	}
	return &Runner{
		catalog:  cat,
		executor: executor,
		facts:    factsClient,
		mode:     mode,
		policy:   cfg.Policy,
	}, nil
}

// Mode returns the tool mode.
func (r *Runner) Mode() string {
	return r.mode
}

// Catalog returns the resource catalog behind the resource tools.
func (r *Runner) Catalog() *catalog.Catalog {
	return r.catalog
}

// Call executes one tool by name and returns JSON-like map content.
func (r *Runner) Call(ctx context.Context, name string, args map[string]any) (map[string]any, error) {
	name = strings.TrimSpace(name)
	switch name {
	case DescribeToolsName:
		return r.describeTools(args)
	case FactsToolName:
		return r.gatherFacts(ctx, args)
	}

	if strings.HasPrefix(name, ToolPrefix) {
		if d, ok := r.catalog.Lookup(strings.TrimPrefix(name, ToolPrefix)); ok {
			return r.callResource(ctx, d, args)
		}
	}
	return nil, notFoundErrorf("unknown tool: %s", name)
}

func validationErrorf(format string, args ...any) error {
	return &ToolError{
		statusCode: http.StatusBadRequest,
		message:    fmt.Sprintf(format, args...),
	}
}

func notFoundErrorf(format string, args ...any) error {
	return &ToolError{
		statusCode: http.StatusNotFound,
		message:    fmt.Sprintf(format, args...),
	}
}

type statusCoder interface {
	StatusCode() int
}

func mapExecutionError(err error, fallback string) error {
	if err == nil {
		return nil
	}
	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		return toolErr
	}
	var apiErr *dashboard.APIError
	if errors.As(err, &apiErr) && reconcile.KindOf(err) == "" {
		return &ToolError{
			statusCode: apiErr.StatusCode,
			message:    fmt.Sprintf("%s: %v", fallback, apiErr),
		}
	}
	if errors.Is(err, context.DeadlineExceeded) && reconcile.KindOf(err) == "" {
		return &ToolError{
			statusCode: http.StatusGatewayTimeout,
			message:    fallback + ": request timed out",
		}
	}
	if errors.Is(err, context.Canceled) && reconcile.KindOf(err) == "" {
		return &ToolError{
			statusCode: http.StatusRequestTimeout,
			message:    fallback + ": request canceled",
		}
	}
	var coded statusCoder
	if errors.As(err, &coded) {
		return &ToolError{
			statusCode: coded.StatusCode(),
			message:    err.Error(),
		}
	}
	return &ToolError{
		statusCode: http.StatusInternalServerError,
		message:    fmt.Sprintf("%s: %v", fallback, err),
	}
}

func decodeArgsStrict(args map[string]any, out any) error {
	if args == nil {
		args = map[string]any{}
	}
	encoded, err := json.Marshal(args)
	if err != nil {
		return validationErrorf("invalid tool arguments: %v", err)
	}
	decoder := json.NewDecoder(bytes.NewReader(encoded))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil {
		return validationErrorf("invalid tool arguments: %v", err)
	}
	if decoder.More() {
		return validationErrorf("tool arguments must be a single JSON object")
	}
	return nil
}

func toMap(v any) (map[string]any, error) {
	encoded, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding tool response: %w", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		return nil, fmt.Errorf("decoding tool response: %w", err)
	}
	return decoded, nil
}
