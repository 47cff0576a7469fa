// Package runner executes reconcile invocations with the audit, metrics and
// event side effects, and runs playbooks with bounded parallelism.
package runner

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/ansible-network/meraki-rm-sub001/internal/audit"
	"github.com/ansible-network/meraki-rm-sub001/internal/catalog"
	"github.com/ansible-network/meraki-rm-sub001/internal/events"
	"github.com/ansible-network/meraki-rm-sub001/internal/facts"
	"github.com/ansible-network/meraki-rm-sub001/internal/metrics"
	"github.com/ansible-network/meraki-rm-sub001/internal/reconcile"
)

// Reconciler runs one invocation.
type Reconciler interface {
	Reconcile(ctx context.Context, inv reconcile.Invocation, tc reconcile.TaskContext) (*reconcile.Result, error)
	Catalog() *catalog.Catalog
}

// Request is one invocation plus the caller metadata recorded in audit.
type Request struct {
	Invocation reconcile.Invocation
	Task       reconcile.TaskContext
	RequestID  string
	Transport  string
	Caller     string
}

// Executor wraps a Reconciler with side effects.
type Executor struct {
	reconciler Reconciler
	audit      *audit.Logger
	metrics    *metrics.Metrics
	publisher  events.Publisher
	facts      facts.Client
	mode       string
	logger     zerolog.Logger
}

// Option configures an Executor.
type Option func(*Executor)

// WithAudit sets the audit logger.
func WithAudit(a *audit.Logger) Option {
	return func(e *Executor) {
		e.audit = a
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Executor) {
		e.metrics = m
	}
}

// WithPublisher sets the event publisher.
func WithPublisher(p events.Publisher) Option {
	return func(e *Executor) {
		e.publisher = p
	}
}

// WithFacts enables meraki_facts tasks against client.
func WithFacts(client facts.Client) Option {
	return func(e *Executor) {
		e.facts = client
	}
}

// WithMode records the policy mode in audit entries.
func WithMode(mode string) Option {
	return func(e *Executor) {
		e.mode = mode
	}
}

// NewExecutor creates an executor. Side effects not configured are skipped.
func NewExecutor(r Reconciler, logger zerolog.Logger, opts ...Option) *Executor {
	e := &Executor{
		reconciler: r,
		publisher:  events.Noop{},
		logger:     logger.With().Str("component", "runner").Logger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the resource catalog of the underlying reconciler.
func (e *Executor) Catalog() *catalog.Catalog {
	return e.reconciler.Catalog()
}

// Execute reconciles req and records audit, metrics and the completion
// event. Event publishing failures are logged and do not fail the run.
func (e *Executor) Execute(ctx context.Context, req Request) (*reconcile.Result, error) {
	started := time.Now()
	res, err := e.reconciler.Reconcile(ctx, req.Invocation, req.Task)
	elapsed := time.Since(started)
	if res == nil {
		res = &reconcile.Result{Resource: req.Invocation.Resource, State: req.Invocation.State, Scope: req.Invocation.Scope}
	}

	ops := operationCounts(res)
	outcome := res.Outcome
	if outcome == "" && err != nil {
		outcome = reconcile.PhaseFailed
	}

	completion := audit.Completion{
		RequestID:  req.RequestID,
		Transport:  req.Transport,
		Mode:       e.mode,
		CallerSub:  req.Caller,
		Resource:   res.Resource,
		State:      string(res.State),
		Scope:      res.Scope,
		CheckMode:  req.Task.CheckMode,
		Changed:    res.Changed,
		Operations: ops,
		Outcome:    outcome,
		Config:     req.Invocation.Config,
		Duration:   elapsed,
	}
	if err != nil {
		completion.ErrorKind = string(reconcile.KindOf(err))
		completion.ErrorDetail = err.Error()
		var coded interface{ StatusCode() int }
		if errors.As(err, &coded) {
			completion.StatusCode = coded.StatusCode()
		}
	}
	e.audit.Complete(completion)
	e.metrics.ObserveReconcile(res.Resource, string(res.State), outcome, req.Task.CheckMode, ops, elapsed)

	payload := events.ReconcileCompleted{
		RequestID:  req.RequestID,
		Resource:   res.Resource,
		State:      string(res.State),
		Scope:      res.Scope,
		CheckMode:  req.Task.CheckMode,
		Changed:    res.Changed,
		Outcome:    outcome,
		Operations: ops,
		DurationMS: elapsed.Milliseconds(),
	}
	if err != nil {
		payload.Error = audit.RedactSensitiveText(err.Error())
	}
	if event, evErr := events.NewReconcileCompleted(payload); evErr != nil {
		e.logger.Warn().Err(evErr).Msg("building reconcile event")
	} else if pubErr := e.publisher.Publish(context.WithoutCancel(ctx), event); pubErr != nil {
		e.logger.Warn().Err(pubErr).Str("event_id", event.ID).Msg("publishing reconcile event")
	}

	return res, err
}

func operationCounts(res *reconcile.Result) map[string]int {
	out := make(map[string]int, 3)
	for kind, count := range res.Operations() {
		out[string(kind)] = count
	}
	return out
}
