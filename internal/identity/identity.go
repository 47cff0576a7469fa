// Package identity binds a configuration entry to an instance of a gathered
// snapshot using the system key or the canonical key of its class.
package identity

import (
	"github.com/ansible-network/meraki-rm-sub001/internal/catalog"
	"github.com/ansible-network/meraki-rm-sub001/internal/transform"
)

// Status is the outcome of a resolution.
type Status int

const (
	// Missing means no snapshot element matches.
	Missing Status = iota
	// Resolved means exactly one snapshot element matches.
	Resolved
	// Ambiguous means several elements share the canonical key.
	Ambiguous
)

func (s Status) String() string {
	switch s {
	case Resolved:
		return "resolved"
	case Ambiguous:
		return "ambiguous"
	default:
		return "missing"
	}
}

// Resolution is the result of Resolve.
type Resolution struct {
	Status Status
	// ID is the routing key of the matched element.
	ID string
	// Index is the position of the matched element in the snapshot, or -1.
	Index int
	// Candidates lists the routing keys of every match when ambiguous.
	Candidates []string
}

// Resolve matches entity against snapshot, both in presentation form.
func Resolve(d *catalog.Descriptor, entity transform.Record, snapshot []transform.Record) Resolution {
	if d.SystemKey != "" {
		if want, ok := value(entity, d.SystemKey); ok {
			for i, element := range snapshot {
				if have, ok := value(element, d.SystemKey); ok && have == want {
					return Resolution{Status: Resolved, ID: have, Index: i}
				}
			}
			return Resolution{Status: Missing, Index: -1}
		}
	}

	if d.CanonicalKey != "" {
		if want, ok := value(entity, d.CanonicalKey); ok {
			var matches []int
			for i, element := range snapshot {
				if have, ok := value(element, d.CanonicalKey); ok && have == want {
					matches = append(matches, i)
				}
			}
			switch len(matches) {
			case 0:
				return Resolution{Status: Missing, Index: -1}
			case 1:
				id, _ := value(snapshot[matches[0]], d.KeyField())
				return Resolution{Status: Resolved, ID: id, Index: matches[0]}
			default:
				candidates := make([]string, 0, len(matches))
				for _, i := range matches {
					id, _ := value(snapshot[i], d.KeyField())
					candidates = append(candidates, id)
				}
				return Resolution{Status: Ambiguous, Index: -1, Candidates: candidates}
			}
		}
	}

	return Resolution{Status: Missing, Index: -1}
}

func value(r transform.Record, field string) (string, bool) {
	v, ok := r[field]
	if !ok || v == nil {
		return "", false
	}
	s := transform.KeyString(v)
	return s, s != ""
}
