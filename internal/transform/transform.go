// Package transform renames records between the snake_case presentation
// vocabulary and the camelCase wire vocabulary using a per-resource field map.
package transform

import (
	"fmt"
	"sort"
)

// Record is a loosely typed entity: presentation or wire form.
type Record map[string]any

// FieldMap maps presentation field names to wire field names.
type FieldMap map[string]string

var scopeFields = map[string]struct{}{
	"network_id":      {},
	"organization_id": {},
	"serial":          {},
}

// IsScopeField reports whether a presentation field names the parent scope.
func IsScopeField(name string) bool {
	_, ok := scopeFields[name]
	return ok
}

// MappingError reports a field map that does not fit the wire schema.
type MappingError struct {
	Resource string
	Field    string
	Target   string
	Reason   string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("%s: field map %s -> %s: %s", e.Resource, e.Field, e.Target, e.Reason)
}

// Transformer converts records of one resource in both directions.
type Transformer struct {
	resource       string
	toWire         map[string]string
	toPresentation map[string]string
}

// New validates fm against the wire inventory reported by hasWireField and
// returns a Transformer for the resource.
func New(resource string, fm FieldMap, hasWireField func(string) bool) (*Transformer, error) {
	t := &Transformer{
		resource:       resource,
		toWire:         make(map[string]string, len(fm)),
		toPresentation: make(map[string]string, len(fm)),
	}

	fields := make([]string, 0, len(fm))
	for field := range fm {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		target := fm[field]
		switch {
		case IsScopeField(field):
			return nil, &MappingError{Resource: resource, Field: field, Target: target, Reason: "scope fields cannot be mapped"}
		case hasWireField != nil && !hasWireField(target):
			return nil, &MappingError{Resource: resource, Field: field, Target: target, Reason: "wire field does not exist"}
		}
		if other, dup := t.toPresentation[target]; dup {
			return nil, &MappingError{Resource: resource, Field: field, Target: target, Reason: fmt.Sprintf("target already mapped from %s", other)}
		}
		t.toWire[field] = target
		t.toPresentation[target] = field
	}

	return t, nil
}

// Resource returns the resource name the transformer was built for.
func (t *Transformer) Resource() string {
	return t.resource
}

// ToWire renames mapped presentation fields, drops scope fields and null
// values and passes everything else through unchanged. Nested values are
// shared with the input.
func (t *Transformer) ToWire(p Record) Record {
	out := make(Record, len(p))
	for field, value := range p {
		if value == nil {
			continue
		}
		if target, ok := t.toWire[field]; ok {
			out[target] = value
			continue
		}
		if IsScopeField(field) {
			continue
		}
		out[field] = value
	}
	return out
}

// ToPresentation is the inverse of ToWire. Unmapped wire fields pass
// through as extra presentation fields.
func (t *Transformer) ToPresentation(w Record) Record {
	out := make(Record, len(w))
	for field, value := range w {
		if value == nil {
			continue
		}
		if name, ok := t.toPresentation[field]; ok {
			out[name] = value
			continue
		}
		out[field] = value
	}
	return out
}

// WireName returns the wire name of a mapped presentation field.
func (t *Transformer) WireName(field string) (string, bool) {
	name, ok := t.toWire[field]
	return name, ok
}

// PresentationName returns the presentation name of a mapped wire field.
func (t *Transformer) PresentationName(field string) (string, bool) {
	name, ok := t.toPresentation[field]
	return name, ok
}

// Mapped returns the mapped presentation field names in sorted order.
func (t *Transformer) Mapped() []string {
	names := make([]string, 0, len(t.toWire))
	for name := range t.toWire {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Project keeps only the mapped, non-null fields of a presentation record.
func (t *Transformer) Project(p Record) Record {
	out := make(Record, len(t.toWire))
	for field := range t.toWire {
		if value, ok := p[field]; ok && value != nil {
			out[field] = value
		}
	}
	return out
}
