// Package task converts module arguments into reconcile invocations, loads
// playbook files and renders invocations back as task YAML.
package task

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/ansible-network/meraki-rm-sub001/internal/catalog"
	"github.com/ansible-network/meraki-rm-sub001/internal/reconcile"
	"github.com/ansible-network/meraki-rm-sub001/internal/transform"
)

// CollectionPrefix qualifies module names.
const CollectionPrefix = "cisco.meraki_rm."

// Argument names besides the scope field.
const (
	ArgState     = "state"
	ArgConfig    = "config"
	ArgCheckMode = "check_mode"
	ArgDiff      = "diff"
	ArgConfirm   = "confirm"
)

// Options are the per-call flags carried next to module arguments.
type Options struct {
	CheckMode bool
	Diff      bool
	Confirm   bool
}

// TaskContext returns the reconcile flags for o.
func (o Options) TaskContext() reconcile.TaskContext {
	return reconcile.TaskContext{CheckMode: o.CheckMode, DiffMode: o.Diff}
}

// FQCN returns the fully qualified module name of d.
func FQCN(d *catalog.Descriptor) string {
	return CollectionPrefix + d.Module
}

// ParseArgs validates module arguments for d and builds the invocation.
// state defaults to merged; config may be a list or a single mapping.
func ParseArgs(d *catalog.Descriptor, args map[string]any) (reconcile.Invocation, Options, error) {
	scopeField := string(d.ScopeParam)
	allowed := []string{ArgState, ArgConfig, ArgCheckMode, ArgDiff, ArgConfirm, scopeField}

	var unknown []string
	for key := range args {
		if !slices.Contains(allowed, key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return reconcile.Invocation{}, Options{}, reconcile.NewValidationError(unknown[0],
			"unsupported parameters: %s (supported: %s)", strings.Join(unknown, ", "), strings.Join(allowed, ", "))
	}

	inv := reconcile.Invocation{Resource: d.Name, State: catalog.Merged}
	if raw, ok := args[ArgState]; ok && raw != nil {
		name, ok := raw.(string)
		if !ok {
			return inv, Options{}, reconcile.NewValidationError(ArgState, "must be a string")
		}
		state, err := catalog.ParseState(name)
		if err != nil {
			return inv, Options{}, reconcile.NewValidationError(ArgState, "%v", err)
		}
		inv.State = state
	}

	if raw, ok := args[scopeField]; ok && raw != nil {
		inv.Scope = strings.TrimSpace(transform.KeyString(raw))
	}

	config, err := configList(args[ArgConfig])
	if err != nil {
		return inv, Options{}, err
	}
	inv.Config = config

	var opts Options
	for key, dst := range map[string]*bool{ArgCheckMode: &opts.CheckMode, ArgDiff: &opts.Diff, ArgConfirm: &opts.Confirm} {
		raw, ok := args[key]
		if !ok || raw == nil {
			continue
		}
		flag, ok := raw.(bool)
		if !ok {
			return inv, Options{}, reconcile.NewValidationError(key, "must be a boolean")
		}
		*dst = flag
	}
	return inv, opts, nil
}

func configList(raw any) ([]map[string]any, error) {
	switch typed := raw.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return []map[string]any{typed}, nil
	case []map[string]any:
		return typed, nil
	case []any:
		out := make([]map[string]any, 0, len(typed))
		for i, item := range typed {
			entry, ok := item.(map[string]any)
			if !ok {
				return nil, reconcile.NewValidationError(fmt.Sprintf("config[%d]", i), "must be a mapping, got %T", item)
			}
			out = append(out, entry)
		}
		return out, nil
	default:
		return nil, reconcile.NewValidationError(ArgConfig, "must be a list of mappings, got %T", raw)
	}
}
