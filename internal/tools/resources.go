package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/ansible-network/meraki-rm-sub001/internal/catalog"
	"github.com/ansible-network/meraki-rm-sub001/internal/config"
	"github.com/ansible-network/meraki-rm-sub001/internal/facts"
	"github.com/ansible-network/meraki-rm-sub001/internal/model"
	"github.com/ansible-network/meraki-rm-sub001/internal/reconcile"
	"github.com/ansible-network/meraki-rm-sub001/internal/runner"
	"github.com/ansible-network/meraki-rm-sub001/internal/task"
)

// CallMeta identifies the caller of a tool for audit entries.
type CallMeta struct {
	RequestID string
	Transport string
	Caller    string
}

type callMetaKey struct{}

// WithCallMeta attaches meta to ctx.
func WithCallMeta(ctx context.Context, meta CallMeta) context.Context {
	return context.WithValue(ctx, callMetaKey{}, meta)
}

func callMetaFrom(ctx context.Context) CallMeta {
	meta, _ := ctx.Value(callMetaKey{}).(CallMeta)
	if meta.RequestID == "" {
		meta.RequestID = uuid.NewString()
	}
	return meta
}

// InputSchema is the JSON schema of a resource tool's arguments.
func InputSchema(d *catalog.Descriptor) map[string]any {
	item, ok := model.InputSchema(d.Name)
	if !ok {
		item = map[string]any{"type": "object"}
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			string(d.ScopeParam): map[string]any{
				"type":        "string",
				"description": fmt.Sprintf("Target %s.", d.ScopeParam),
			},
			task.ArgState: map[string]any{
				"type":        "string",
				"enum":        stateNames(d),
				"default":     string(catalog.Merged),
				"description": "Resource module state.",
			},
			task.ArgConfig: map[string]any{
				"type":        "array",
				"items":       item,
				"description": "List of resource configurations.",
			},
			task.ArgCheckMode: map[string]any{"type": "boolean", "description": "Plan and preview without changing the Dashboard."},
			task.ArgDiff:      map[string]any{"type": "boolean", "description": "Include a unified diff of before and after."},
			task.ArgConfirm:   map[string]any{"type": "boolean", "description": "Confirm a destructive state."},
		},
		"required":             []string{string(d.ScopeParam)},
		"additionalProperties": false,
	}
}

// FactsInputSchema is the JSON schema of the facts tool's arguments.
func FactsInputSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"gather_subset": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string", "enum": []string{facts.SubsetAll, facts.SubsetOrganizations, facts.SubsetNetworks, facts.SubsetDevices, facts.SubsetInventory}},
			},
			"organization_id": map[string]any{"type": "string"},
			"network_id":      map[string]any{"type": "string"},
		},
		"additionalProperties": false,
	}
}

func (r *Runner) callResource(ctx context.Context, d *catalog.Descriptor, args map[string]any) (map[string]any, error) {
	inv, opts, err := task.ParseArgs(d, args)
	if err != nil {
		return nil, mapExecutionError(err, "parsing arguments")
	}

	if r.mode == config.MCPModeTask {
		if err := reconcile.Validate(d, inv); err != nil {
			return nil, mapExecutionError(err, "validating arguments")
		}
		rendered, err := task.Render(d, inv, opts)
		if err != nil {
			return nil, mapExecutionError(err, "rendering task")
		}
		return map[string]any{
			"module": task.FQCN(d),
			"state":  string(inv.State),
			"task":   string(rendered),
		}, nil
	}

	if err := r.policy.Check(d.Name, inv.State, inv.Scope, opts.CheckMode, args); err != nil {
		return nil, mapExecutionError(err, "authorizing reconcile")
	}

	meta := callMetaFrom(ctx)
	res, err := r.executor.Execute(ctx, runner.Request{
		Invocation: inv,
		Task:       opts.TaskContext(),
		RequestID:  meta.RequestID,
		Transport:  meta.Transport,
		Caller:     meta.Caller,
	})
	if err != nil {
		return nil, mapExecutionError(err, "reconciling "+d.Name)
	}
	return toMap(res)
}

type describeArgs struct {
	Name string `json:"name,omitempty"`
}

func (r *Runner) describeTools(args map[string]any) (map[string]any, error) {
	var req describeArgs
	if err := decodeArgsStrict(args, &req); err != nil {
		return nil, err
	}

	if req.Name != "" {
		d, ok := r.catalog.Lookup(strings.TrimPrefix(req.Name, ToolPrefix))
		if !ok {
			return nil, notFoundErrorf("unknown tool: %s", req.Name)
		}
		return map[string]any{
			"name":            ToolName(d),
			"description":     d.Description,
			"module":          task.FQCN(d),
			"scope_param":     string(d.ScopeParam),
			"canonical_key":   d.CanonicalKey,
			"system_key":      d.SystemKey,
			"supports_delete": d.SupportsDelete(),
			"valid_states":    stateNames(d),
			"inputSchema":     InputSchema(d),
		}, nil
	}

	all := r.catalog.All()
	catalogue := make([]any, 0, len(all))
	for _, d := range all {
		catalogue = append(catalogue, map[string]any{
			"name":          ToolName(d),
			"scope":         string(d.ScopeParam),
			"canonical_key": d.CanonicalKey,
			"states":        stateNames(d),
		})
	}
	return map[string]any{
		"mode":       r.mode,
		"tool_count": len(catalogue),
		"tools":      catalogue,
	}, nil
}

type factsTask struct {
	Name  string        `yaml:"name"`
	Facts facts.Request `yaml:"cisco.meraki_rm.meraki_facts"`
}

func (r *Runner) gatherFacts(ctx context.Context, args map[string]any) (map[string]any, error) {
	var req facts.Request
	if err := decodeArgsStrict(args, &req); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, validationErrorf("%v", err)
	}

	if r.mode == config.MCPModeTask || r.facts == nil {
		rendered, err := yaml.Marshal([]factsTask{{Name: "Gather Meraki facts", Facts: req}})
		if err != nil {
			return nil, mapExecutionError(err, "rendering task")
		}
		return map[string]any{
			"module": task.CollectionPrefix + FactsToolName,
			"task":   string(rendered),
		}, nil
	}

	gathered, err := facts.Gather(ctx, r.facts, req)
	if err != nil {
		return nil, mapExecutionError(err, "gathering facts")
	}
	return toMap(gathered.AnsibleFacts())
}

func stateNames(d *catalog.Descriptor) []string {
	states := d.ValidStates()
	out := make([]string, 0, len(states))
	for _, s := range states {
		out = append(out, string(s))
	}
	return out
}
