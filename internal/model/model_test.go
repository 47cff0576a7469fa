package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansible-network/meraki-rm-sub001/internal/transform"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		resource string
		entry    map[string]any
		want     transform.Record
		wantPath string
	}{
		{
			name:     "plain entry",
			resource: "vlan",
			entry:    map[string]any{"vlan_id": "100", "name": "Test", "subnet": "192.168.128.0/24"},
			want:     transform.Record{"vlan_id": "100", "name": "Test", "subnet": "192.168.128.0/24"},
		},
		{
			name:     "number coerced to string field",
			resource: "vlan",
			entry:    map[string]any{"vlan_id": 100, "mask": "24"},
			want:     transform.Record{"vlan_id": "100", "mask": float64(24)},
		},
		{
			name:     "nulls dropped",
			resource: "vlan",
			entry:    map[string]any{"vlan_id": "1", "name": nil},
			want:     transform.Record{"vlan_id": "1"},
		},
		{
			name:     "unknown key",
			resource: "vlan",
			entry:    map[string]any{"vlan_id": "1", "colour": "blue"},
			wantPath: "config[0].colour",
		},
		{
			name:     "type mismatch",
			resource: "vlan",
			entry:    map[string]any{"dhcp_relay_server_ips": "10.0.0.1"},
			wantPath: "config[0]",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Decode(tc.resource, 0, tc.entry)
			if tc.wantPath != "" {
				require.Error(t, err)
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Path, tc.wantPath)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeUnknownResource(t *testing.T) {
	t.Parallel()

	_, err := Decode("nope", 0, map[string]any{})
	require.Error(t, err)
}

func TestInputSchema(t *testing.T) {
	t.Parallel()

	schema, ok := InputSchema("vlan", "vlan_id")
	require.True(t, ok)

	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, []string{"vlan_id"}, schema["required"])
	props := schema["properties"].(map[string]any)
	assert.Equal(t, map[string]any{"type": "string"}, props["name"])
	assert.Equal(t, map[string]any{"type": "integer"}, props["mask"])
	assert.Equal(t, map[string]any{"type": "array", "items": map[string]any{"type": "string"}}, props["dhcp_relay_server_ips"])
}

func TestEveryModelDeclaresJSONNames(t *testing.T) {
	t.Parallel()

	for _, name := range Resources() {
		fields, ok := Fields(name)
		require.True(t, ok, name)
		require.NotEmpty(t, fields, name)
		seen := map[string]bool{}
		for _, f := range fields {
			assert.False(t, seen[f.Name], "%s declares %s twice", name, f.Name)
			seen[f.Name] = true
		}
	}
}
