package reconcile

import (
	"fmt"

	"github.com/ansible-network/meraki-rm-sub001/internal/catalog"
	"github.com/ansible-network/meraki-rm-sub001/internal/identity"
	"github.com/ansible-network/meraki-rm-sub001/internal/transform"
)

// Step is one planned mutation.
type Step struct {
	Kind   catalog.OpKind    `json:"op"`
	Method string            `json:"method"`
	Path   string            `json:"path"`
	Params map[string]string `json:"params"`
	// ID is the routing key of the target instance; empty for creates.
	ID   string           `json:"id,omitempty"`
	Body transform.Record `json:"body,omitempty"`

	// index is the position of the target in the wire snapshot, -1 when the
	// target is not part of it.
	index int
	// seed holds identity fields of a target missing from the snapshot.
	seed transform.Record
}

// planner turns resolved configuration entries into an ordered plan.
type planner struct {
	d     *catalog.Descriptor
	tr    *transform.Transformer
	state catalog.State
	scope string

	// before and wire are the same snapshot in presentation and wire form.
	before []transform.Record
	wire   []transform.Record
}

func (p *planner) plan(configs []transform.Record) ([]Step, error) {
	var upserts, deletes []Step
	claimed := make(map[int]bool, len(p.wire))

	for i, cfg := range configs {
		res := identity.Resolve(p.d, cfg, p.before)
		if res.Status == identity.Ambiguous {
			return nil, ambiguous(p.d, transform.KeyString(cfg[p.d.CanonicalKey]), res.Candidates)
		}
		if res.Status == identity.Resolved {
			claimed[res.Index] = true
		}

		switch p.state {
		case catalog.Deleted:
			if res.Status != identity.Resolved || claimedTwice(deletes, res.Index) {
				continue
			}
			step, err := p.deleteStep(res.Index)
			if err != nil {
				return nil, err
			}
			deletes = append(deletes, step)

		case catalog.Merged, catalog.Replaced, catalog.Overridden:
			step, ok, err := p.upsertStep(i, cfg, res)
			if err != nil {
				return nil, err
			}
			if ok {
				upserts = append(upserts, step)
			}
		}
	}

	if p.state == catalog.Overridden {
		for index := range p.wire {
			if claimed[index] {
				continue
			}
			step, err := p.deleteStep(index)
			if err != nil {
				return nil, err
			}
			deletes = append(deletes, step)
		}
	}

	return append(upserts, deletes...), nil
}

func claimedTwice(steps []Step, index int) bool {
	for _, s := range steps {
		if s.index == index {
			return true
		}
	}
	return false
}

func (p *planner) upsertStep(i int, cfg transform.Record, res identity.Resolution) (Step, bool, error) {
	desired := p.tr.ToWire(cfg)
	index := res.Index

	if res.Status == identity.Missing {
		switch p.d.Shape {
		case catalog.Collection:
			step, err := p.createStep(i, cfg, desired)
			return step, err == nil, err
		case catalog.Singleton:
			if len(p.wire) > 0 {
				index = 0
			}
		}
	}

	existing := transform.Record{}
	existingPresentation := transform.Record{}
	if index >= 0 {
		existing = p.wire[index]
		existingPresentation = p.before[index]
	}

	op, hasUpdate := p.d.Operation(catalog.OpUpdate)
	if !hasUpdate {
		if transform.Matches(existing, p.withoutKey(desired)) {
			return Step{}, false, nil
		}
		return Step{}, false, unsupportedf("%s instances cannot be updated; use deleted then merged", p.d.Name)
	}

	settable := transform.Filter(desired, op.Fields)
	if transform.Matches(existing, settable) {
		return Step{}, false, nil
	}

	var body transform.Record
	if p.state == catalog.Replaced {
		body = settable
	} else {
		body = transform.Filter(transform.Overlay(existing, desired), op.Fields)
	}

	params, err := p.bind(op, fmt.Sprintf("config[%d]", i), existingPresentation, cfg, existing, desired)
	if err != nil {
		return Step{}, false, err
	}

	step := Step{
		Kind:   catalog.OpUpdate,
		Method: op.Method,
		Path:   op.Path,
		Params: params,
		ID:     res.ID,
		Body:   body,
		index:  index,
	}
	if index < 0 {
		step.seed = p.keySeed(desired)
		if step.ID == "" {
			step.ID = transform.KeyString(cfg[p.d.KeyField()])
		}
	}
	return step, true, nil
}

func (p *planner) createStep(i int, cfg, desired transform.Record) (Step, error) {
	op, ok := p.d.Operation(catalog.OpCreate)
	if !ok {
		return Step{}, unsupportedf("%s does not support creating instances", p.d.Name)
	}
	params, err := p.bind(op, fmt.Sprintf("config[%d]", i), cfg, desired)
	if err != nil {
		return Step{}, err
	}
	return Step{
		Kind:   catalog.OpCreate,
		Method: op.Method,
		Path:   op.Path,
		Params: params,
		Body:   transform.Filter(p.withoutKey(desired), op.Fields),
		index:  -1,
	}, nil
}

func (p *planner) deleteStep(index int) (Step, error) {
	op, ok := p.d.Operation(catalog.OpDelete)
	if !ok {
		return Step{}, unsupportedf("%s does not support deleting instances", p.d.Name)
	}
	params, err := p.bind(op, fmt.Sprintf("before[%d]", index), p.before[index], p.wire[index])
	if err != nil {
		return Step{}, err
	}
	return Step{
		Kind:   catalog.OpDelete,
		Method: op.Method,
		Path:   op.Path,
		Params: params,
		ID:     transform.KeyString(p.before[index][p.d.KeyField()]),
		index:  index,
	}, nil
}

// withoutKey drops the server-assigned key from a wire record.
func (p *planner) withoutKey(w transform.Record) transform.Record {
	if p.d.SystemKey == "" {
		return w
	}
	wireKey, _ := p.tr.WireName(p.d.SystemKey)
	out := make(transform.Record, len(w))
	for field, value := range w {
		if field != wireKey {
			out[field] = value
		}
	}
	return out
}

func (p *planner) keySeed(desired transform.Record) transform.Record {
	seed := transform.Record{}
	if key := p.d.KeyField(); key != "" {
		if wireKey, ok := p.tr.WireName(key); ok && desired[wireKey] != nil {
			seed[wireKey] = desired[wireKey]
		}
	}
	return seed
}

// bind resolves every path parameter of op. The scope placeholder takes the
// invocation scope; the others are looked up by name and then by alias in
// sources, first match wins.
func (p *planner) bind(op catalog.Operation, where string, sources ...transform.Record) (map[string]string, error) {
	return bindParams(p.d, op, p.scope, where, sources...)
}

func bindParams(d *catalog.Descriptor, op catalog.Operation, scope, where string, sources ...transform.Record) (map[string]string, error) {
	scopeParam := d.ScopePathParam()
	params := make(map[string]string, len(op.PathParams))

	for _, name := range op.PathParams {
		if name == scopeParam {
			params[name] = scope
			continue
		}
		value := lookupParam(name, d.Aliases[name], sources)
		if value == "" {
			return nil, validationErrorf(where, "cannot bind path parameter %s from %v", name, d.Aliases[name])
		}
		params[name] = value
	}
	return params, nil
}

func lookupParam(name string, aliases []string, sources []transform.Record) string {
	for _, source := range sources {
		if v := transform.KeyString(source[name]); v != "" {
			return v
		}
		for _, alias := range aliases {
			if v := transform.KeyString(source[alias]); v != "" {
				return v
			}
		}
	}
	return ""
}
