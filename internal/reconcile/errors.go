package reconcile

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ansible-network/meraki-rm-sub001/internal/catalog"
	"github.com/ansible-network/meraki-rm-sub001/pkg/dashboard"
)

// Kind classifies reconcile failures on the result boundary.
type Kind string

const (
	KindValidation  Kind = "ValidationError"
	KindAmbiguous   Kind = "AmbiguousIdentity"
	KindUnsupported Kind = "UnsupportedState"
	KindTransport   Kind = "TransportError"
	KindCancelled   Kind = "Cancelled"
)

// Error is a classified reconcile failure.
type Error struct {
	Kind     Kind
	Resource string
	State    catalog.State
	// Path locates the offending configuration field for validation errors.
	Path string
	// Candidates lists the competing system keys of an ambiguous identity.
	Candidates []string
	// Step is the operation that failed or was interrupted.
	Step *Step
	// Status is the upstream HTTP status of a transport error.
	Status int

	msg string
	err error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	b.WriteString(": ")
	b.WriteString(e.msg)
	if e.Step != nil {
		fmt.Fprintf(&b, " (%s %s %s)", e.Step.Kind, e.Step.Method, e.Step.Path)
	}
	if e.err != nil {
		b.WriteString(": ")
		b.WriteString(e.err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.err
}

// StatusCode maps the failure kind to an HTTP status for API surfaces.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAmbiguous:
		return http.StatusConflict
	case KindUnsupported:
		return http.StatusUnprocessableEntity
	case KindTransport:
		if e.Status >= 400 {
			return e.Status
		}
		return http.StatusBadGateway
	case KindCancelled:
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

// KindOf returns the kind of a reconcile error, or "" for other errors.
func KindOf(err error) Kind {
	var rErr *Error
	if errors.As(err, &rErr) {
		return rErr.Kind
	}
	return ""
}

// NewValidationError builds a ValidationError located at path, for callers
// that validate invocation arguments before reconciling.
func NewValidationError(path, format string, args ...any) *Error {
	return validationErrorf(path, format, args...)
}

func validationErrorf(path, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Path: path, msg: fmt.Sprintf(format, args...)}
}

func unsupportedf(format string, args ...any) *Error {
	return &Error{Kind: KindUnsupported, msg: fmt.Sprintf(format, args...)}
}

func ambiguous(d *catalog.Descriptor, value string, candidates []string) *Error {
	return &Error{
		Kind:       KindAmbiguous,
		Candidates: candidates,
		msg: fmt.Sprintf("%s %q matches %d instances (%s); set %s to choose one",
			d.CanonicalKey, value, len(candidates), strings.Join(candidates, ", "), d.KeyField()),
	}
}

// transportError classifies a client failure. Context cancellation during
// the call is reported as Cancelled.
func transportError(ctx context.Context, step *Step, msg string, err error) *Error {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindCancelled, Step: step, msg: msg, err: err}
	}
	return &Error{Kind: KindTransport, Step: step, Status: dashboard.StatusCode(err), msg: msg, err: err}
}
