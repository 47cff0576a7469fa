package runner

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ansible-network/meraki-rm-sub001/internal/facts"
	"github.com/ansible-network/meraki-rm-sub001/internal/policy"
	"github.com/ansible-network/meraki-rm-sub001/internal/reconcile"
	"github.com/ansible-network/meraki-rm-sub001/internal/task"
)

// FactsModule is the module name of the facts task.
const FactsModule = "meraki_facts"

const defaultConcurrency = 4

// RunOptions controls a playbook run.
type RunOptions struct {
	// Concurrency bounds how many resource/scope groups run at once.
	Concurrency int
	// CheckMode and Diff apply to tasks that do not set them.
	CheckMode bool
	Diff      bool
	// Policy is checked before each reconcile task; nil allows everything.
	Policy *policy.Policy
	// Transport is recorded in audit entries.
	Transport string
}

// Outcome is the result of one playbook task.
type Outcome struct {
	Task   task.Task
	Result *reconcile.Result
	Facts  map[string]any
	Err    error
	// Skipped is set when an earlier task of the same group failed.
	Skipped  bool
	Duration time.Duration
}

// Failed reports whether the task failed and was not ignored.
func (o Outcome) Failed() bool {
	return o.Err != nil && !o.Task.IgnoreErrors
}

// Changed reports whether the task changed remote state.
func (o Outcome) Changed() bool {
	return o.Result != nil && o.Result.Changed
}

// Recap counts outcomes the way a play recap does.
type Recap struct {
	OK      int `json:"ok"`
	Changed int `json:"changed"`
	Failed  int `json:"failed"`
	Ignored int `json:"ignored"`
	Skipped int `json:"skipped"`
}

// Summarize builds the recap of outcomes.
func Summarize(outcomes []Outcome) Recap {
	var r Recap
	for _, o := range outcomes {
		switch {
		case o.Skipped:
			r.Skipped++
		case o.Err != nil && o.Task.IgnoreErrors:
			r.Ignored++
		case o.Err != nil:
			r.Failed++
		default:
			r.OK++
			if o.Changed() {
				r.Changed++
			}
		}
	}
	return r
}

type preparedTask struct {
	task   task.Task
	group  string
	req    Request
	facts  *facts.Request
	policy map[string]any
	err    error
}

// RunPlaybook runs tasks grouped by resource and scope. Groups run in
// parallel up to opts.Concurrency; tasks inside a group run in playbook
// order, and a failure skips the rest of its group unless the task sets
// ignore_errors. Outcomes are returned in playbook order.
func (e *Executor) RunPlaybook(ctx context.Context, tasks []task.Task, opts RunOptions) []Outcome {
	limit := opts.Concurrency
	if limit <= 0 {
		limit = defaultConcurrency
	}

	outcomes := make([]Outcome, len(tasks))
	var order []string
	groups := make(map[string][]preparedTask)
	for i, t := range tasks {
		p := e.prepare(i, t, opts)
		if _, ok := groups[p.group]; !ok {
			order = append(order, p.group)
		}
		groups[p.group] = append(groups[p.group], p)
	}

	var g errgroup.Group
	g.SetLimit(limit)
	for _, key := range order {
		members := groups[key]
		g.Go(func() error {
			failed := false
			for _, p := range members {
				idx := p.task.Index
				if failed {
					outcomes[idx] = Outcome{Task: p.task, Skipped: true}
					continue
				}
				outcomes[idx] = e.runTask(ctx, p, opts)
				if outcomes[idx].Failed() {
					failed = true
				}
			}
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

func (e *Executor) prepare(i int, t task.Task, opts RunOptions) preparedTask {
	t.Index = i
	p := preparedTask{task: t, group: fmt.Sprintf("#%d", i)}

	name := t.Module
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	if name == FactsModule {
		req, err := decodeFactsRequest(t.Args)
		p.group = FactsModule
		p.facts = &req
		p.err = err
		return p
	}

	d, ok := e.Catalog().Lookup(t.Module)
	if !ok {
		p.err = reconcile.NewValidationError("", "unknown module %q", t.Module)
		return p
	}
	inv, flags, err := task.ParseArgs(d, t.Args)
	if err != nil {
		p.err = err
		return p
	}
	flags.CheckMode = flags.CheckMode || boolOr(t.CheckMode, opts.CheckMode)
	flags.Diff = flags.Diff || boolOr(t.Diff, opts.Diff)

	p.group = d.Name + "/" + inv.Scope
	p.policy = t.Args
	p.req = Request{
		Invocation: inv,
		Task:       flags.TaskContext(),
		RequestID:  uuid.NewString(),
		Transport:  opts.Transport,
	}
	return p
}

func (e *Executor) runTask(ctx context.Context, p preparedTask, opts RunOptions) (out Outcome) {
	started := time.Now()
	out.Task = p.task
	logger := e.logger.With().Str("task", p.task.Label()).Logger()
	defer func() {
		out.Duration = time.Since(started)
		logger.Debug().Dur("duration", out.Duration).Bool("failed", out.Err != nil).Msg("task finished")
	}()

	if p.err != nil {
		out.Err = p.err
		logger.Error().Err(p.err).Msg("task rejected")
		return out
	}

	if p.facts != nil {
		if e.facts == nil {
			out.Err = fmt.Errorf("facts are not available without a dashboard client")
			return out
		}
		gathered, err := facts.Gather(ctx, e.facts, *p.facts)
		if err != nil {
			out.Err = err
			return out
		}
		out.Facts = gathered.AnsibleFacts()
		return out
	}

	inv := p.req.Invocation
	if opts.Policy != nil {
		if err := opts.Policy.Check(inv.Resource, inv.State, inv.Scope, p.req.Task.CheckMode, p.policy); err != nil {
			out.Err = err
			logger.Warn().Err(err).Msg("task denied")
			return out
		}
	}

	res, err := e.Execute(ctx, p.req)
	out.Result = res
	out.Err = err
	return out
}

// decodeFactsRequest reads meraki_facts arguments, rejecting unknown keys.
func decodeFactsRequest(args map[string]any) (facts.Request, error) {
	var req facts.Request
	raw, err := json.Marshal(args)
	if err != nil {
		return req, reconcile.NewValidationError("", "encoding facts arguments: %v", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, reconcile.NewValidationError("", "invalid facts arguments: %v", err)
	}
	if err := req.Validate(); err != nil {
		return req, reconcile.NewValidationError("gather_subset", "%v", err)
	}
	return req, nil
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
