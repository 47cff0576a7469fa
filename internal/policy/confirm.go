package policy

import (
	"fmt"
	"strings"

	"github.com/ansible-network/meraki-rm-sub001/internal/catalog"
)

// RequireConfirmation enforces explicit confirm=true for runs that may
// delete instances. Check-mode runs never mutate and are exempt.
func RequireConfirmation(resource string, state catalog.State, enforced bool, args map[string]any) error {
	if !enforced || !state.Destructive() {
		return nil
	}
	if flagTrue(args, "check_mode") || flagTrue(args, "confirm") {
		return nil
	}
	name := strings.TrimSpace(resource)
	if name == "" {
		name = "unknown"
	}
	return fmt.Errorf("%s state %s requires confirm=true", name, state)
}

func flagTrue(args map[string]any, key string) bool {
	if args == nil {
		return false
	}
	value, ok := args[key]
	if !ok {
		return false
	}
	flag, ok := value.(bool)
	return ok && flag
}
