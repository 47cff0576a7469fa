package policy

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ansible-network/meraki-rm-sub001/internal/catalog"
)

// AllowAnyScope in the allowed list disables the scope gate.
const AllowAnyScope = "*"

// RequireScope validates that a mutating run targets an allowed scope id.
//
// An empty allow list means no scope gate. Gathered runs are never gated.
func RequireScope(resource string, state catalog.State, scope string, allowed []string) error {
	if !state.Mutating() {
		return nil
	}
	allowedScopes := normalizeScopeList(allowed)
	if len(allowedScopes) == 0 || slices.Contains(allowedScopes, AllowAnyScope) {
		return nil
	}
	target := strings.TrimSpace(scope)
	if slices.Contains(allowedScopes, target) {
		return nil
	}

	name := strings.TrimSpace(resource)
	if name == "" {
		name = "unknown"
	}
	return fmt.Errorf(
		"%s scope %q is not allowed (allowed: %s)",
		name,
		target,
		strings.Join(allowedScopes, ", "),
	)
}

func normalizeScopeList(scopes []string) []string {
	seen := make(map[string]struct{}, len(scopes))
	result := make([]string, 0, len(scopes))
	for _, scope := range scopes {
		trimmed := strings.TrimSpace(scope)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}
