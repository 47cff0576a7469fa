package policy

import (
	"errors"
	"net/http"

	"github.com/ansible-network/meraki-rm-sub001/internal/catalog"
)

// DeniedError is a policy refusal. Missing confirmation maps to 400, every
// other refusal to 403.
type DeniedError struct {
	err    error
	status int
}

func (e *DeniedError) Error() string {
	return "policy denied: " + e.err.Error()
}

func (e *DeniedError) Unwrap() error {
	return e.err
}

// StatusCode returns the HTTP status of the refusal.
func (e *DeniedError) StatusCode() int {
	return e.status
}

// IsDenied reports whether err is a policy refusal.
func IsDenied(err error) bool {
	var denied *DeniedError
	return errors.As(err, &denied)
}

// Policy bundles the mode guard, confirmation and scope gates applied to
// every reconcile request arriving over MCP or HTTP.
type Policy struct {
	Guard               *Guard
	RequireConfirmation bool
	AllowedScopes       []string
}

// Check runs every gate for one request. args carries the raw request
// arguments, consulted for confirm and check_mode.
func (p Policy) Check(resource string, state catalog.State, scope string, checkMode bool, args map[string]any) error {
	if err := p.Guard.AuthorizeState(resource, state, checkMode); err != nil {
		return &DeniedError{err: err, status: http.StatusForbidden}
	}
	if err := RequireScope(resource, state, scope, p.AllowedScopes); err != nil {
		return &DeniedError{err: err, status: http.StatusForbidden}
	}
	if !checkMode {
		if err := RequireConfirmation(resource, state, p.RequireConfirmation, args); err != nil {
			return &DeniedError{err: err, status: http.StatusBadRequest}
		}
	}
	return nil
}
