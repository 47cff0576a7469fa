package reconcile

import (
	"context"
	"errors"

	"github.com/looplab/fsm"
	"github.com/rs/zerolog"
)

// Lifecycle states of one invocation.
const (
	PhasePending   = "pending"
	PhaseGathered  = "gathered"
	PhasePlanned   = "planned"
	PhaseApplied   = "applied"
	PhasePreviewed = "previewed"
	PhaseCompleted = "completed"
	PhaseFailed    = "failed"
	PhaseCancelled = "cancelled"
)

const (
	eventGather  = "gather"
	eventPlan    = "plan"
	eventApply   = "apply"
	eventPreview = "preview"
	eventVerify  = "verify"
	eventFail    = "fail"
	eventCancel  = "cancel"
)

type lifecycle struct {
	machine *fsm.FSM
}

func newLifecycle(logger zerolog.Logger) *lifecycle {
	active := []string{PhasePending, PhaseGathered, PhasePlanned, PhaseApplied}

	machine := fsm.NewFSM(
		PhasePending,
		fsm.Events{
			{Name: eventGather, Src: []string{PhasePending}, Dst: PhaseGathered},
			{Name: eventPlan, Src: []string{PhaseGathered}, Dst: PhasePlanned},
			{Name: eventApply, Src: []string{PhasePlanned}, Dst: PhaseApplied},
			{Name: eventPreview, Src: []string{PhasePlanned}, Dst: PhasePreviewed},
			{Name: eventVerify, Src: []string{PhaseGathered, PhaseApplied}, Dst: PhaseCompleted},
			{Name: eventFail, Src: active, Dst: PhaseFailed},
			{Name: eventCancel, Src: active, Dst: PhaseCancelled},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				logger.Debug().Str("from", e.Src).Str("to", e.Dst).Msg("reconcile phase")
			},
		},
	)
	return &lifecycle{machine: machine}
}

// fire advances the lifecycle. Transitions run detached from ctx
// cancellation; an invalid transition parks the machine in failed.
func (l *lifecycle) fire(ctx context.Context, event string) {
	err := l.machine.Event(context.WithoutCancel(ctx), event)
	var noTransition fsm.NoTransitionError
	if err != nil && !errors.As(err, &noTransition) {
		l.machine.SetState(PhaseFailed)
	}
}

// finish records the terminal phase for err.
func (l *lifecycle) finish(ctx context.Context, err error) {
	switch {
	case err == nil:
		return
	case KindOf(err) == KindCancelled:
		l.fire(ctx, eventCancel)
	default:
		l.fire(ctx, eventFail)
	}
}

func (l *lifecycle) current() string {
	return l.machine.Current()
}
