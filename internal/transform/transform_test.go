package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var vlanFields = FieldMap{
	"vlan_id":      "id",
	"name":         "name",
	"subnet":       "subnet",
	"appliance_ip": "applianceIp",
}

func wireHas(fields ...string) func(string) bool {
	set := map[string]bool{}
	for _, f := range fields {
		set[f] = true
	}
	return func(name string) bool { return set[name] }
}

func newVLANTransformer(t *testing.T) *Transformer {
	t.Helper()
	tr, err := New("vlan", vlanFields, wireHas("id", "name", "subnet", "applianceIp", "dhcpHandling"))
	require.NoError(t, err)
	return tr
}

func TestNewRejectsBadMaps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fm     FieldMap
		reason string
	}{
		{name: "missing wire field", fm: FieldMap{"name": "displayName"}, reason: "wire field does not exist"},
		{name: "scope field", fm: FieldMap{"network_id": "id"}, reason: "scope fields cannot be mapped"},
		{name: "not bijective", fm: FieldMap{"id": "id", "vlan_id": "id"}, reason: "target already mapped"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := New("vlan", tc.fm, wireHas("id", "name"))
			require.Error(t, err)
			var mappingErr *MappingError
			require.ErrorAs(t, err, &mappingErr)
			assert.Equal(t, "vlan", mappingErr.Resource)
			assert.Contains(t, err.Error(), tc.reason)
		})
	}
}

func TestToWire(t *testing.T) {
	t.Parallel()

	tr := newVLANTransformer(t)
	nested := map[string]any{"enabled": true}

	got := tr.ToWire(Record{
		"network_id":   "N_1",
		"vlan_id":      "100",
		"name":         "Test",
		"subnet":       nil,
		"appliance_ip": "10.0.0.1",
		"ipv6":         nested,
	})

	assert.Equal(t, Record{
		"id":          "100",
		"name":        "Test",
		"applianceIp": "10.0.0.1",
		"ipv6":        nested,
	}, got)
	assert.NotContains(t, got, "network_id")
	assert.NotContains(t, got, "subnet")
}

func TestToPresentationPassesExtraFields(t *testing.T) {
	t.Parallel()

	tr := newVLANTransformer(t)
	got := tr.ToPresentation(Record{"id": "100", "name": "Test", "interfaceId": "IF_1", "mask": nil})

	assert.Equal(t, Record{"vlan_id": "100", "name": "Test", "interfaceId": "IF_1"}, got)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	tr := newVLANTransformer(t)

	p := Record{"vlan_id": "100", "name": "Test", "subnet": "10.0.0.0/24", "appliance_ip": "10.0.0.1"}
	assert.Equal(t, p, tr.ToPresentation(tr.ToWire(p)))

	w := Record{"id": "7", "name": "Guest", "subnet": "10.1.0.0/24", "applianceIp": "10.1.0.1"}
	assert.Equal(t, w, tr.ToWire(tr.ToPresentation(w)))
}

func TestProject(t *testing.T) {
	t.Parallel()

	tr := newVLANTransformer(t)
	got := tr.Project(Record{"vlan_id": "1", "interfaceId": "IF_1", "name": nil})

	assert.Equal(t, Record{"vlan_id": "1"}, got)
	assert.Equal(t, []string{"appliance_ip", "name", "subnet", "vlan_id"}, tr.Mapped())

	wireName, ok := tr.WireName("appliance_ip")
	require.True(t, ok)
	assert.Equal(t, "applianceIp", wireName)
	name, ok := tr.PresentationName("applianceIp")
	require.True(t, ok)
	assert.Equal(t, "appliance_ip", name)
}

func TestIsScopeField(t *testing.T) {
	t.Parallel()

	assert.True(t, IsScopeField("network_id"))
	assert.True(t, IsScopeField("organization_id"))
	assert.True(t, IsScopeField("serial"))
	assert.False(t, IsScopeField("name"))
}
