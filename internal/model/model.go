// Package model holds the user-facing snake_case record types of every
// resource and validates configuration entries against them.
package model

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/goccy/go-json"

	"github.com/ansible-network/meraki-rm-sub001/internal/transform"
)

// ValidationError reports a configuration entry that does not fit its model.
type ValidationError struct {
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// New returns a zero value of the presentation record of resource.
func New(resource string) (any, bool) {
	ctor, ok := constructors[resource]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// Resources returns every resource with a presentation model.
func Resources() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Field describes one presentation field.
type Field struct {
	Name string
	Type reflect.Type
}

var fieldCache sync.Map

// Fields returns the presentation fields of resource in declaration order.
func Fields(resource string) ([]Field, bool) {
	if cached, ok := fieldCache.Load(resource); ok {
		return cached.([]Field), true
	}
	v, ok := New(resource)
	if !ok {
		return nil, false
	}
	typ := reflect.TypeOf(v).Elem()
	fields := make([]Field, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		name, _, _ := strings.Cut(typ.Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		fields = append(fields, Field{Name: name, Type: typ.Field(i).Type})
	}
	fieldCache.Store(resource, fields)
	return fields, true
}

// Decode validates one configuration entry of resource and returns it as a
// JSON-normalised record without null values. Scalars given where the model
// expects a string, integer or boolean are coerced when unambiguous.
func Decode(resource string, index int, entry map[string]any) (transform.Record, error) {
	fields, ok := Fields(resource)
	if !ok {
		return nil, fmt.Errorf("unknown resource %q", resource)
	}
	byName := make(map[string]reflect.Type, len(fields))
	for _, f := range fields {
		byName[f.Name] = f.Type
	}

	prefix := fmt.Sprintf("config[%d]", index)
	clean := make(map[string]any, len(entry))
	for key, value := range entry {
		typ, known := byName[key]
		if !known {
			return nil, &ValidationError{Path: prefix + "." + key, Reason: "unsupported parameter"}
		}
		if value == nil {
			continue
		}
		clean[key] = coerce(typ, value)
	}

	raw, err := json.Marshal(clean)
	if err != nil {
		return nil, &ValidationError{Path: prefix, Reason: err.Error()}
	}
	target, _ := New(resource)
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return nil, decodeError(prefix, err)
	}

	record, err := transform.Normalize(clean)
	if err != nil {
		return nil, &ValidationError{Path: prefix, Reason: err.Error()}
	}
	return record, nil
}

func decodeError(prefix string, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &ValidationError{
			Path:   prefix + "." + typeErr.Field,
			Reason: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
		}
	}
	return &ValidationError{Path: prefix, Reason: err.Error()}
}

func coerce(typ reflect.Type, value any) any {
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	switch typ.Kind() {
	case reflect.String:
		switch v := value.(type) {
		case int, int64, float64, bool:
			return transform.KeyString(v)
		}
	case reflect.Int:
		if s, ok := value.(string); ok {
			if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
				return n
			}
		}
	case reflect.Bool:
		if s, ok := value.(string); ok {
			switch strings.ToLower(strings.TrimSpace(s)) {
			case "true", "yes", "on":
				return true
			case "false", "no", "off":
				return false
			}
		}
	}
	return value
}
