// Package types defines public request/response payloads for the meraki-rm API.
package types

import "time"

// APIVersion is reported in every resource envelope.
const APIVersion = "meraki-rm/v1"

// Envelope kinds.
const (
	KindResourceType    = "ResourceType"
	KindReconcileResult = "ReconcileResult"
	KindFacts           = "Facts"
)

// Reconcile outcomes.
const (
	OutcomeCompleted = "completed"
	OutcomePreviewed = "previewed"
	OutcomeFailed    = "failed"
	OutcomeCancelled = "cancelled"
)

// Metadata identifies one resource envelope.
type Metadata struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Resource wraps one payload.
type Resource[T any] struct {
	Kind       string   `json:"kind"`
	APIVersion string   `json:"apiVersion"`
	Metadata   Metadata `json:"metadata"`
	Spec       T        `json:"spec"`
}

// ResourceList wraps a list of payloads.
type ResourceList[T any] struct {
	Kind       string        `json:"kind"`
	APIVersion string        `json:"apiVersion"`
	Items      []Resource[T] `json:"items"`
	Total      int           `json:"total"`
}

// ResourceType describes one managed resource class.
type ResourceType struct {
	Name           string         `json:"name"`
	Module         string         `json:"module"`
	Description    string         `json:"description,omitempty"`
	Shape          string         `json:"shape"`
	ScopeParam     string         `json:"scopeParam"`
	CanonicalKey   string         `json:"canonicalKey,omitempty"`
	SystemKey      string         `json:"systemKey,omitempty"`
	SupportsDelete bool           `json:"supportsDelete"`
	ValidStates    []string       `json:"validStates"`
	ConfigSchema   map[string]any `json:"configSchema,omitempty"`
}

// ReconcileRequest is the body for POST /v1/resources/{name}/reconcile.
type ReconcileRequest struct {
	State     string           `json:"state,omitempty"`
	Scope     string           `json:"scope"`
	Config    []map[string]any `json:"config,omitempty"`
	CheckMode bool             `json:"checkMode,omitempty"`
	Diff      bool             `json:"diff,omitempty"`
	Confirm   bool             `json:"confirm,omitempty"`
	RequestID string           `json:"requestID,omitempty"`
}

// PlanStep is one planned Dashboard call.
type PlanStep struct {
	Op     string            `json:"op"`
	Method string            `json:"method"`
	Path   string            `json:"path"`
	Params map[string]string `json:"params,omitempty"`
	ID     string            `json:"id,omitempty"`
	Body   map[string]any    `json:"body,omitempty"`
}

// Diff is the before/after view of one invocation.
type Diff struct {
	Before   []map[string]any `json:"before"`
	After    []map[string]any `json:"after"`
	Prepared string           `json:"prepared,omitempty"`
}

// ReconcileResult is the outcome of one invocation.
type ReconcileResult struct {
	Resource  string           `json:"resource"`
	State     string           `json:"state"`
	Scope     string           `json:"scope"`
	CheckMode bool             `json:"check_mode"`
	Changed   bool             `json:"changed"`
	Before    []map[string]any `json:"before"`
	After     []map[string]any `json:"after"`
	Config    []map[string]any `json:"config"`
	Gathered  []map[string]any `json:"gathered,omitempty"`
	Diff      *Diff            `json:"diff,omitempty"`
	Plan      []PlanStep       `json:"plan"`
	Outcome   string           `json:"outcome"`
	Failed    bool             `json:"failed,omitempty"`
	Msg       string           `json:"msg,omitempty"`
	Kind      string           `json:"kind,omitempty"`
}

// FactsRequest is the body for POST /v1/facts.
type FactsRequest struct {
	GatherSubset   []string `json:"gather_subset,omitempty"`
	OrganizationID string   `json:"organization_id,omitempty"`
	NetworkID      string   `json:"network_id,omitempty"`
}

// Facts is the gathered inventory, keyed like Ansible facts.
type Facts struct {
	Organizations []map[string]any `json:"meraki_organizations"`
	Networks      []map[string]any `json:"meraki_networks"`
	Devices       []map[string]any `json:"meraki_devices"`
	Inventory     []map[string]any `json:"meraki_inventory"`
}
