package transform

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/tiendc/go-deepcopy"
)

// Normalize converts v into a Record holding only JSON-native values
// (string, float64, bool, nil, []any, map[string]any).
func Normalize(v any) (Record, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding record: %w", err)
	}
	var out Record
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decoding record: %w", err)
	}
	return out, nil
}

// Clone returns a deep copy of r.
func Clone(r Record) (Record, error) {
	if r == nil {
		return nil, nil
	}
	var out Record
	if err := deepcopy.Copy(&out, &r); err != nil {
		return nil, fmt.Errorf("copying record: %w", err)
	}
	return out, nil
}

// CloneAll deep-copies every record of rs.
func CloneAll(rs []Record) ([]Record, error) {
	out := make([]Record, 0, len(rs))
	for _, r := range rs {
		c, err := Clone(r)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// KeyString renders a scalar identity value. Numbers decoded from JSON
// render without a fractional part so "100" and 100 compare equal.
func KeyString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}

// Canonical returns a stable text form of v for sorting and set comparison.
func Canonical(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(raw)
}

// ValuesEqual compares two JSON-native values. Scalars compare by their
// KeyString form, lists compare position by position and maps compare key
// by key.
func ValuesEqual(a, b any) bool {
	if reflect.DeepEqual(a, b) {
		return true
	}
	switch av := a.(type) {
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !ValuesEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := asMap(b)
		if !ok {
			return false
		}
		return mapsEqual(av, bv)
	case Record:
		bv, ok := asMap(b)
		if !ok {
			return false
		}
		return mapsEqual(av, bv)
	}
	if isScalar(a) && isScalar(b) {
		return KeyString(a) == KeyString(b)
	}
	return false
}

// Matches reports whether every non-null field of want equals the same field
// of have.
func Matches(have, want Record) bool {
	for field, value := range want {
		if value == nil {
			continue
		}
		if !ValuesEqual(have[field], value) {
			return false
		}
	}
	return true
}

// Overlay returns base with every non-null field of top written over it.
func Overlay(base, top Record) Record {
	out := make(Record, len(base)+len(top))
	for field, value := range base {
		out[field] = value
	}
	for field, value := range top {
		if value == nil {
			continue
		}
		out[field] = value
	}
	return out
}

// Filter keeps only the fields named in allow. A nil allow keeps everything.
func Filter(r Record, allow []string) Record {
	if allow == nil {
		return r
	}
	out := make(Record, len(allow))
	for _, field := range allow {
		if value, ok := r[field]; ok && value != nil {
			out[field] = value
		}
	}
	return out
}

// SetsEqual compares two record lists regardless of order.
func SetsEqual(a, b []Record) bool {
	if len(a) != len(b) {
		return false
	}
	as := make([]any, len(a))
	bs := make([]any, len(b))
	for i := range a {
		as[i] = map[string]any(a[i])
	}
	for i := range b {
		bs[i] = map[string]any(b[i])
	}
	return listsEqual(as, bs)
}

// Sort orders records by their canonical text form.
func Sort(rs []Record) {
	sort.SliceStable(rs, func(i, j int) bool {
		return Canonical(rs[i]) < Canonical(rs[j])
	})
}

func listsEqual(a, b []any) bool {
	used := make([]bool, len(b))
	for _, av := range a {
		found := false
		for j, bv := range b {
			if used[j] || !ValuesEqual(av, bv) {
				continue
			}
			used[j] = true
			found = true
			break
		}
		if !found {
			return false
		}
	}
	return true
}

func mapsEqual(a, b map[string]any) bool {
	if len(nonNull(a)) != len(nonNull(b)) {
		return false
	}
	for k, av := range a {
		if av == nil {
			continue
		}
		if !ValuesEqual(av, b[k]) {
			return false
		}
	}
	return true
}

func nonNull(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k, v := range m {
		if v != nil {
			keys = append(keys, k)
		}
	}
	return keys
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Record:
		return m, true
	}
	return nil, false
}

func isScalar(v any) bool {
	switch v.(type) {
	case string, float64, float32, int, int64, bool:
		return true
	}
	return false
}
