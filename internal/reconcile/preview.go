package reconcile

import (
	"github.com/ansible-network/meraki-rm-sub001/internal/catalog"
	"github.com/ansible-network/meraki-rm-sub001/internal/transform"
)

// preview applies steps to a copy of the wire snapshot the way the Dashboard
// does: POST appends the body, PUT overlays the body on the instance and
// DELETE removes it. snapshot is left untouched.
func preview(snapshot []transform.Record, steps []Step) ([]transform.Record, error) {
	state, err := transform.CloneAll(snapshot)
	if err != nil {
		return nil, err
	}

	removed := make(map[int]bool)
	var appended []transform.Record

	for _, step := range steps {
		body, err := transform.Clone(step.Body)
		if err != nil {
			return nil, err
		}
		switch step.Kind {
		case catalog.OpCreate:
			appended = append(appended, transform.Overlay(transform.Record{}, body))
		case catalog.OpUpdate:
			if step.index >= 0 && step.index < len(state) {
				state[step.index] = transform.Overlay(state[step.index], body)
				continue
			}
			appended = append(appended, transform.Overlay(step.seed, body))
		case catalog.OpDelete:
			removed[step.index] = true
		}
	}

	out := make([]transform.Record, 0, len(state)+len(appended))
	for i, element := range state {
		if !removed[i] {
			out = append(out, element)
		}
	}
	return append(out, appended...), nil
}
