package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansible-network/meraki-rm-sub001/internal/catalog"
	"github.com/ansible-network/meraki-rm-sub001/internal/transform"
)

func descriptor(t *testing.T, name string) *catalog.Descriptor {
	t.Helper()
	d, ok := catalog.Default().Lookup(name)
	require.True(t, ok, name)
	return d
}

func TestResolve(t *testing.T) {
	t.Parallel()

	policyObjects := []transform.Record{
		{"policy_object_id": "PO_42", "name": "BlockList", "cidr": "1.2.3.0/24"},
		{"policy_object_id": "PO_43", "name": "Dup", "cidr": "5.0.0.0/8"},
		{"policy_object_id": "PO_44", "name": "Dup", "cidr": "6.0.0.0/8"},
	}

	tests := []struct {
		name     string
		resource string
		entity   transform.Record
		snapshot []transform.Record
		want     Resolution
	}{
		{
			name:     "system key found",
			resource: "policy_object",
			entity:   transform.Record{"policy_object_id": "PO_43", "name": "Renamed"},
			snapshot: policyObjects,
			want:     Resolution{Status: Resolved, ID: "PO_43", Index: 1},
		},
		{
			name:     "system key wins over canonical key",
			resource: "policy_object",
			entity:   transform.Record{"policy_object_id": "PO_99", "name": "BlockList"},
			snapshot: policyObjects,
			want:     Resolution{Status: Missing, Index: -1},
		},
		{
			name:     "canonical key single match",
			resource: "policy_object",
			entity:   transform.Record{"name": "BlockList", "cidr": "1.2.3.0/25"},
			snapshot: policyObjects,
			want:     Resolution{Status: Resolved, ID: "PO_42", Index: 0},
		},
		{
			name:     "canonical key ambiguous",
			resource: "policy_object",
			entity:   transform.Record{"name": "Dup"},
			snapshot: policyObjects,
			want:     Resolution{Status: Ambiguous, Index: -1, Candidates: []string{"PO_43", "PO_44"}},
		},
		{
			name:     "canonical key missing",
			resource: "policy_object",
			entity:   transform.Record{"name": "Other"},
			snapshot: policyObjects,
			want:     Resolution{Status: Missing, Index: -1},
		},
		{
			name:     "canonical key only class routes by canonical value",
			resource: "vlan",
			entity:   transform.Record{"vlan_id": float64(100)},
			snapshot: []transform.Record{{"vlan_id": "100", "name": "Test"}},
			want:     Resolution{Status: Resolved, ID: "100", Index: 0},
		},
		{
			name:     "gather-first without system key",
			resource: "air_marshal",
			entity:   transform.Record{"type": "block", "match": map[string]any{"type": "bssid"}},
			snapshot: []transform.Record{{"rule_id": "R_1", "type": "block"}},
			want:     Resolution{Status: Missing, Index: -1},
		},
		{
			name:     "gather-first with system key",
			resource: "air_marshal",
			entity:   transform.Record{"rule_id": "R_1"},
			snapshot: []transform.Record{{"rule_id": "R_1", "type": "block"}},
			want:     Resolution{Status: Resolved, ID: "R_1", Index: 0},
		},
		{
			name:     "fixed population by index",
			resource: "ssid",
			entity:   transform.Record{"number": float64(3), "name": "Guest"},
			snapshot: []transform.Record{{"number": float64(0)}, {"number": float64(3)}},
			want:     Resolution{Status: Resolved, ID: "3", Index: 1},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Resolve(descriptor(t, tc.resource), tc.entity, tc.snapshot)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStatusString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "missing", Missing.String())
	assert.Equal(t, "resolved", Resolved.String())
	assert.Equal(t, "ambiguous", Ambiguous.String())
}
