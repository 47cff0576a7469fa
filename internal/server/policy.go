package server

import (
	"net/http"

	"github.com/ansible-network/meraki-rm-sub001/internal/policy"
)

// ToolAuthorizer admits a tool call by the capability its contract declares.
// State, scope and confirmation checks need the decoded arguments and run
// in the tool runner.
type ToolAuthorizer interface {
	Mode() string
	AuthorizeTool(name, capability string) error
}

// capabilityDenied is reported to MCP clients as a 403 tool result.
type capabilityDenied struct {
	err error
}

func (e *capabilityDenied) Error() string { return "tool authorization denied: " + e.err.Error() }

func (e *capabilityDenied) Unwrap() error { return e.err }

func (e *capabilityDenied) StatusCode() int { return http.StatusForbidden }

// authorizer returns the configured gate. Without one the read-only guard
// applies.
func (m MCP) authorizer() ToolAuthorizer {
	if m.Authorizer == nil {
		return (*policy.Guard)(nil)
	}
	return m.Authorizer
}

func (m MCP) authorize(tool ToolSpec) error {
	if err := m.authorizer().AuthorizeTool(tool.Name, tool.Capability); err != nil {
		return &capabilityDenied{err: err}
	}
	return nil
}
