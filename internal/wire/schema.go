// Package wire declares the Dashboard API object inventory per resource:
// camelCase records, the field set returned by the API and closed-enum
// constraints on individual fields.
package wire

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ansible-network/meraki-rm-sub001/internal/transform"
)

// Schema describes the wire form of one resource.
type Schema struct {
	// Name is the resource name shared with the catalog.
	Name string
	// Paths are the API paths whose response schemas contribute fields.
	Paths []string
	// Fields is the sorted union of response properties across Paths.
	Fields []string
	// Enums holds closed value sets keyed by wire field.
	Enums map[string][]string

	newValue func() any
}

// ConstraintError reports a wire value outside its declared enum.
type ConstraintError struct {
	Resource string
	Field    string
	Value    any
	Allowed  []string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s: field %q value %v is not one of [%s]",
		e.Resource, e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

// Lookup returns the schema registered for a resource.
func Lookup(name string) (*Schema, bool) {
	s, ok := schemas[name]
	return s, ok
}

// Names returns every registered resource name in sorted order.
func Names() []string {
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether field is part of the wire inventory.
func (s *Schema) Has(field string) bool {
	i := sort.SearchStrings(s.Fields, field)
	return i < len(s.Fields) && s.Fields[i] == field
}

// New returns a zero value of the typed wire record.
func (s *Schema) New() any {
	return s.newValue()
}

// Validate checks enum-constrained fields of a wire record. Unconstrained
// and absent fields are ignored; list values are checked element-wise.
func (s *Schema) Validate(record map[string]any) error {
	fields := make([]string, 0, len(s.Enums))
	for field := range s.Enums {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		value, ok := record[field]
		if !ok || value == nil {
			continue
		}
		allowed := s.Enums[field]
		items, isList := value.([]any)
		if !isList {
			items = []any{value}
		}
		for _, item := range items {
			if !isScalar(item) {
				continue
			}
			if !contains(allowed, transform.KeyString(item)) {
				return &ConstraintError{Resource: s.Name, Field: field, Value: item, Allowed: allowed}
			}
		}
	}
	return nil
}

func isScalar(v any) bool {
	switch v.(type) {
	case string, bool, float64, float32, int, int64:
		return true
	}
	return false
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
