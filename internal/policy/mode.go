// Package policy defines execution guardrails for reconcile requests coming
// from the MCP and HTTP surfaces.
package policy

import (
	"fmt"
	"strings"

	"github.com/ansible-network/meraki-rm-sub001/internal/catalog"
)

const (
	// ModeReadOnly allows gathered and check-mode runs only.
	ModeReadOnly = "read-only"
	// ModeReadWrite allows every state.
	ModeReadWrite = "read-write"
)

// Guard enforces mode-based execution policy.
type Guard struct {
	mode string
}

// NewGuard validates mode configuration and returns an execution guard.
//
// read-write mode requires enableWrite=true for dual-control safety.
func NewGuard(mode string, enableWrite bool) (*Guard, error) {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		normalized = ModeReadOnly
	}

	switch normalized {
	case ModeReadOnly:
		return &Guard{mode: normalized}, nil
	case ModeReadWrite:
		if !enableWrite {
			return nil, fmt.Errorf("read-write mode requires MERAKI_RM_ENABLE_WRITE=true")
		}
		return &Guard{mode: normalized}, nil
	default:
		return nil, fmt.Errorf("invalid mode %q (allowed: %s|%s)", normalized, ModeReadOnly, ModeReadWrite)
	}
}

// Mode returns the resolved mode.
func (g *Guard) Mode() string {
	if g == nil {
		return ModeReadOnly
	}
	return g.mode
}

// AuthorizeTool allows or denies tool execution based on tool capability.
func (g *Guard) AuthorizeTool(name, capability string) error {
	toolName := strings.TrimSpace(name)
	if toolName == "" {
		toolName = "unknown"
	}

	switch strings.ToLower(strings.TrimSpace(capability)) {
	case "read":
		return nil
	case "write":
		// Write tools also serve gathered and check-mode calls; AuthorizeState
		// decides once the arguments are known.
		return nil
	default:
		return fmt.Errorf("tool %s has unknown capability %q", toolName, strings.TrimSpace(capability))
	}
}

// AuthorizeState allows or denies one reconcile of resource in state.
// Read-only mode admits gathered and check-mode runs.
func (g *Guard) AuthorizeState(resource string, state catalog.State, checkMode bool) error {
	if !state.Mutating() || checkMode {
		return nil
	}
	if g.Mode() == ModeReadWrite {
		return nil
	}
	return fmt.Errorf("%s state %s requires read-write mode (use check_mode or gathered)", resource, state)
}
