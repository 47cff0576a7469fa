// Package reconcile drives one declarative invocation: gather the remote
// snapshot, resolve identities, plan mutations for the requested state,
// execute or preview them and report before, after and the diff.
package reconcile

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/ansible-network/meraki-rm-sub001/internal/catalog"
	"github.com/ansible-network/meraki-rm-sub001/internal/model"
	"github.com/ansible-network/meraki-rm-sub001/internal/transform"
	"github.com/ansible-network/meraki-rm-sub001/internal/wire"
	"github.com/ansible-network/meraki-rm-sub001/pkg/dashboard"
)

// DashboardClient is the transport used by the reconciler. Placeholders in
// path are substituted by the client from params.
type DashboardClient interface {
	Request(ctx context.Context, method, path string, params map[string]string, body any) (*dashboard.Response, error)
}

// TaskContext carries per-invocation runtime flags.
type TaskContext struct {
	// CheckMode plans and previews without mutating calls.
	CheckMode bool
	// DiffMode adds a rendered unified diff to the result.
	DiffMode bool
	// TolerateCancel reports cancellation with Failed=false.
	TolerateCancel bool
	// Logger overrides the reconciler logger for this invocation.
	Logger *zerolog.Logger
}

// Invocation is one reconcile request for a resource under one scope.
type Invocation struct {
	Resource string
	State    catalog.State
	// Scope is the network id, organization id or device serial.
	Scope  string
	Config []map[string]any
}

// Result is the envelope returned for every invocation.
type Result struct {
	Resource  string             `json:"resource"`
	State     catalog.State      `json:"state"`
	Scope     string             `json:"scope"`
	CheckMode bool               `json:"check_mode"`
	Changed   bool               `json:"changed"`
	Before    []transform.Record `json:"before"`
	After     []transform.Record `json:"after"`
	// Config aliases After, or Gathered for the gathered state.
	Config   []transform.Record `json:"config"`
	Gathered []transform.Record `json:"gathered,omitempty"`
	Diff     *Diff              `json:"diff,omitempty"`
	Plan     []Step             `json:"plan"`
	Outcome  string             `json:"outcome"`
	Duration time.Duration      `json:"-"`

	Failed bool   `json:"failed,omitempty"`
	Msg    string `json:"msg,omitempty"`
	Kind   Kind   `json:"kind,omitempty"`
}

// Operations counts planned steps by kind.
func (r *Result) Operations() map[catalog.OpKind]int {
	counts := make(map[catalog.OpKind]int, 3)
	for _, step := range r.Plan {
		counts[step.Kind]++
	}
	return counts
}

// Reconciler executes invocations against a Dashboard client.
type Reconciler struct {
	client  DashboardClient
	catalog *catalog.Catalog
	log     zerolog.Logger
}

// New creates a reconciler. A nil catalog selects the built-in one.
func New(client DashboardClient, cat *catalog.Catalog, logger zerolog.Logger) *Reconciler {
	if cat == nil {
		cat = catalog.Default()
	}
	return &Reconciler{
		client:  client,
		catalog: cat,
		log:     logger.With().Str("component", "reconcile").Logger(),
	}
}

// Catalog returns the resource catalog in use.
func (r *Reconciler) Catalog() *catalog.Catalog {
	return r.catalog
}

// Reconcile runs one invocation. The returned Result is never nil; on
// failure it carries Failed, Msg and Kind and the error is returned too.
func (r *Reconciler) Reconcile(ctx context.Context, inv Invocation, tc TaskContext) (*Result, error) {
	started := time.Now()
	logger := r.log
	if tc.Logger != nil {
		logger = tc.Logger.With().Str("component", "reconcile").Logger()
	}
	logger = logger.With().Str("resource", inv.Resource).Str("state", string(inv.State)).Str("scope", inv.Scope).Logger()

	res := &Result{
		Resource:  inv.Resource,
		State:     inv.State,
		Scope:     inv.Scope,
		CheckMode: tc.CheckMode,
		Plan:      []Step{},
	}
	lc := newLifecycle(logger)

	err := r.run(ctx, inv, tc, res, lc, logger)
	lc.finish(ctx, err)
	res.Outcome = lc.current()
	res.Duration = time.Since(started)

	if err != nil {
		if rErr, ok := err.(*Error); ok {
			rErr.Resource = inv.Resource
			rErr.State = inv.State
		}
		res.Msg = err.Error()
		res.Kind = KindOf(err)
		res.Failed = !(res.Kind == KindCancelled && tc.TolerateCancel)
		logger.Error().Err(err).Str("kind", string(res.Kind)).Msg("reconcile failed")
		return res, err
	}

	logger.Debug().Bool("changed", res.Changed).Int("operations", len(res.Plan)).Msg("reconcile finished")
	return res, nil
}

func (r *Reconciler) run(ctx context.Context, inv Invocation, tc TaskContext, res *Result, lc *lifecycle, logger zerolog.Logger) error {
	d, ok := r.catalog.Lookup(inv.Resource)
	if !ok {
		return validationErrorf("resource", "unknown resource %q", inv.Resource)
	}
	res.Resource = d.Name

	if err := checkInvocation(d, inv); err != nil {
		return err
	}

	configs, err := decodeConfig(d, inv)
	if err != nil {
		return err
	}

	wireSnapshot, err := r.fetch(ctx, d, inv.Scope)
	if err != nil {
		return err
	}
	lc.fire(ctx, eventGather)
	res.Before = present(d, wireSnapshot)

	if inv.State == catalog.Gathered {
		res.After = res.Before
		res.Gathered = res.Before
		res.Config = res.Before
		res.Diff = &Diff{Before: res.Before, After: res.Before}
		lc.fire(ctx, eventVerify)
		return nil
	}

	p := &planner{
		d:      d,
		tr:     d.Transformer(),
		state:  inv.State,
		scope:  inv.Scope,
		before: res.Before,
		wire:   wireSnapshot,
	}
	steps, err := p.plan(configs)
	if err != nil {
		return err
	}
	res.Plan = steps
	lc.fire(ctx, eventPlan)
	logger.Debug().Int("operations", len(steps)).Msg("plan ready")

	var execErr error
	if tc.CheckMode {
		afterWire, err := preview(wireSnapshot, steps)
		if err != nil {
			return err
		}
		res.After = present(d, afterWire)
		lc.fire(ctx, eventPreview)
	} else {
		execErr = r.apply(ctx, d, steps, logger)
		if execErr == nil {
			lc.fire(ctx, eventApply)
		}

		afterWire, err := r.fetch(context.WithoutCancel(ctx), d, inv.Scope)
		switch {
		case err == nil:
			res.After = present(d, afterWire)
		case execErr == nil:
			return err
		default:
			logger.Warn().Err(err).Msg("re-reading state after failure")
		}
	}

	res.Config = res.After
	res.Changed = changed(d, res.Before, res.After)
	res.Diff = &Diff{Before: res.Before, After: res.After}
	if tc.DiffMode && res.Changed {
		prepared, err := renderDiff(d.Name, res.Before, res.After)
		if err != nil {
			return err
		}
		res.Diff.Prepared = prepared
	}

	if execErr != nil {
		return execErr
	}
	if !tc.CheckMode {
		lc.fire(ctx, eventVerify)
	}
	return nil
}

// Validate checks state, scope and configuration of inv against d without
// contacting the Dashboard.
func Validate(d *catalog.Descriptor, inv Invocation) error {
	if err := checkInvocation(d, inv); err != nil {
		return err
	}
	_, err := decodeConfig(d, inv)
	return err
}

func checkInvocation(d *catalog.Descriptor, inv Invocation) error {
	if !d.AcceptsState(inv.State) {
		return unsupportedf("state %q is not supported by %s (%s); valid states: %v", inv.State, d.Name, d.Shape, d.ValidStates())
	}
	if inv.Scope == "" {
		return validationErrorf(string(d.ScopeParam), "%s is required", d.ScopeParam)
	}
	return nil
}

// decodeConfig validates configuration entries and returns them as
// presentation records.
func decodeConfig(d *catalog.Descriptor, inv Invocation) ([]transform.Record, error) {
	if inv.State == catalog.Gathered {
		return nil, nil
	}
	if d.Shape == catalog.Singleton && len(inv.Config) > 1 {
		return nil, validationErrorf("config", "%s accepts a single config entry, got %d", d.Name, len(inv.Config))
	}

	scopeField := string(d.ScopeParam)
	configs := make([]transform.Record, 0, len(inv.Config))
	for i, entry := range inv.Config {
		rec, err := model.Decode(d.Name, i, entry)
		if err != nil {
			if vErr, ok := err.(*model.ValidationError); ok {
				return nil, validationErrorf(vErr.Path, "%s", vErr.Reason)
			}
			return nil, validationErrorf(fmt.Sprintf("config[%d]", i), "%v", err)
		}

		if v, ok := rec[scopeField]; ok && transform.KeyString(v) != inv.Scope {
			return nil, validationErrorf(fmt.Sprintf("config[%d].%s", i, scopeField),
				"%q does not match the invocation scope %q", transform.KeyString(v), inv.Scope)
		}
		if d.Shape == catalog.FixedPopulation && inv.State != catalog.Deleted {
			if _, ok := rec[d.SystemKey]; !ok {
				return nil, validationErrorf(fmt.Sprintf("config[%d].%s", i, d.SystemKey), "%s is required for %s", d.SystemKey, d.Name)
			}
		}

		if err := d.Schema().Validate(d.Transformer().ToWire(rec)); err != nil {
			if cErr, ok := err.(*wire.ConstraintError); ok {
				field := cErr.Field
				if name, mapped := d.Transformer().PresentationName(field); mapped {
					field = name
				}
				return nil, validationErrorf(fmt.Sprintf("config[%d].%s", i, field), "%v is not one of %v", cErr.Value, cErr.Allowed)
			}
			return nil, validationErrorf(fmt.Sprintf("config[%d]", i), "%v", err)
		}
		configs = append(configs, rec)
	}
	return configs, nil
}

// fetch reads the current remote state in wire form. A 404 is an empty
// snapshot.
func (r *Reconciler) fetch(ctx context.Context, d *catalog.Descriptor, scope string) ([]transform.Record, error) {
	op, ok := d.Operation(catalog.OpFindAll)
	if !ok {
		op, _ = d.Operation(catalog.OpFind)
	}
	params, err := bindParams(d, op, scope, "scope")
	if err != nil {
		return nil, err
	}

	resp, err := r.client.Request(ctx, http.MethodGet, op.Path, params, nil)
	if err != nil {
		if dashboard.IsNotFound(err) {
			return []transform.Record{}, nil
		}
		return nil, transportError(ctx, nil, fmt.Sprintf("reading %s", d.Name), err)
	}

	records := resp.Records()
	out := make([]transform.Record, 0, len(records))
	for _, rec := range records {
		out = append(out, transform.Record(rec))
	}
	return out, nil
}

// apply executes steps in order and stops at the first failure or when ctx
// is cancelled.
func (r *Reconciler) apply(ctx context.Context, d *catalog.Descriptor, steps []Step, logger zerolog.Logger) error {
	for i := range steps {
		step := &steps[i]
		if err := ctx.Err(); err != nil {
			return &Error{Kind: KindCancelled, Step: step, msg: fmt.Sprintf("stopped after %d of %d operations", i, len(steps)), err: err}
		}

		logger.Info().
			Str("op", string(step.Kind)).
			Str("method", step.Method).
			Str("path", step.Path).
			Str("id", step.ID).
			Msg("dispatching operation")

		var body any
		if step.Kind != catalog.OpDelete {
			body = step.Body
		}
		if _, err := r.client.Request(ctx, step.Method, step.Path, step.Params, body); err != nil {
			if step.Kind == catalog.OpDelete && dashboard.IsNotFound(err) {
				continue
			}
			return transportError(ctx, step, fmt.Sprintf("%s %s failed after %d of %d operations", step.Kind, d.Name, i, len(steps)), err)
		}
	}
	return nil
}

func present(d *catalog.Descriptor, records []transform.Record) []transform.Record {
	tr := d.Transformer()
	out := make([]transform.Record, 0, len(records))
	for _, rec := range records {
		out = append(out, tr.ToPresentation(rec))
	}
	return out
}

// changed compares the snapshots on mapped fields, ignoring order.
func changed(d *catalog.Descriptor, before, after []transform.Record) bool {
	tr := d.Transformer()
	project := func(rs []transform.Record) []transform.Record {
		out := make([]transform.Record, 0, len(rs))
		for _, r := range rs {
			out = append(out, tr.Project(r))
		}
		return out
	}
	return !transform.SetsEqual(project(before), project(after))
}
