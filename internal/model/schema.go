package model

import "reflect"

// InputSchema renders the presentation record of resource as a JSON Schema
// object. Required lists fields every entry must carry.
func InputSchema(resource string, required ...string) (map[string]any, bool) {
	fields, ok := Fields(resource)
	if !ok {
		return nil, false
	}
	props := make(map[string]any, len(fields))
	for _, f := range fields {
		props[f.Name] = typeSchema(f.Type)
	}
	schema := map[string]any{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema, true
}

func typeSchema(typ reflect.Type) map[string]any {
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	switch typ.Kind() {
	case reflect.String:
		return map[string]any{"type": "string"}
	case reflect.Int, reflect.Int64:
		return map[string]any{"type": "integer"}
	case reflect.Float64:
		return map[string]any{"type": "number"}
	case reflect.Bool:
		return map[string]any{"type": "boolean"}
	case reflect.Slice:
		return map[string]any{"type": "array", "items": typeSchema(typ.Elem())}
	default:
		return map[string]any{"type": "object"}
	}
}
