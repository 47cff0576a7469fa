package catalog

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansible-network/meraki-rm-sub001/internal/model"
	"github.com/ansible-network/meraki-rm-sub001/internal/transform"
	"github.com/ansible-network/meraki-rm-sub001/internal/wire"
)

func TestDefaultCatalogIsWellFormed(t *testing.T) {
	t.Parallel()

	c, err := New(builtin())
	require.NoError(t, err)
	assert.NotPanics(t, func() { Default() })
	assert.Equal(t, wire.Names(), c.Names())
	assert.Equal(t, model.Resources(), c.Names())
}

func TestEveryClassRoundTrips(t *testing.T) {
	t.Parallel()

	for _, d := range Default().All() {
		d := d
		t.Run(d.Name, func(t *testing.T) {
			t.Parallel()

			tr := d.Transformer()
			p := transform.Record{}
			w := transform.Record{}
			for _, field := range tr.Mapped() {
				p[field] = "p_" + field
				target, ok := tr.WireName(field)
				require.True(t, ok)
				w[target] = "w_" + target
			}

			assert.Equal(t, p, tr.ToPresentation(tr.ToWire(p)))
			assert.Equal(t, w, tr.ToWire(tr.ToPresentation(w)))
		})
	}
}

func TestScopeNeverReachesWire(t *testing.T) {
	t.Parallel()

	for _, d := range Default().All() {
		p := transform.Record{"network_id": "N_1", "organization_id": "O_1", "serial": "Q2XX-0000-0001"}
		for _, field := range d.Transformer().Mapped() {
			p[field] = "x"
		}
		got := d.Transformer().ToWire(p)
		for _, scope := range []string{"network_id", "organization_id", "serial"} {
			assert.NotContains(t, got, scope, d.Name)
		}
	}
}

func TestModelsCoverFieldMaps(t *testing.T) {
	t.Parallel()

	for _, d := range Default().All() {
		fields, ok := model.Fields(d.Name)
		require.True(t, ok, d.Name)
		declared := map[string]bool{}
		for _, f := range fields {
			declared[f.Name] = true
		}
		assert.True(t, declared[string(d.ScopeParam)], "%s model lacks scope %s", d.Name, d.ScopeParam)
		for field := range d.FieldMap {
			assert.True(t, declared[field], "%s model lacks %s", d.Name, field)
		}
	}
}

func TestShapesAndStates(t *testing.T) {
	t.Parallel()

	c := Default()

	vlan, ok := c.Lookup("vlan")
	require.True(t, ok)
	assert.Equal(t, Collection, vlan.Shape)
	assert.Equal(t, "vlan_id", vlan.KeyField())
	assert.Equal(t, "networkId", vlan.ScopePathParam())
	assert.Equal(t, AllStates, vlan.ValidStates())
	assert.True(t, vlan.SupportsDelete())
	assert.False(t, vlan.GatherFirst())

	firewall, ok := c.Lookup("firewall")
	require.True(t, ok)
	assert.Equal(t, Singleton, firewall.Shape)
	assert.Equal(t, []State{Merged, Replaced, Gathered}, firewall.ValidStates())
	assert.False(t, firewall.AcceptsState(Deleted))

	ssid, ok := c.Lookup("ssid")
	require.True(t, ok)
	assert.Equal(t, FixedPopulation, ssid.Shape)
	assert.Equal(t, "number", ssid.KeyField())

	rule, ok := c.Lookup("air_marshal")
	require.True(t, ok)
	assert.True(t, rule.GatherFirst())
	assert.Equal(t, []State{Merged, Replaced, Deleted}, rule.ValidStates())

	policyObject, ok := c.Lookup("policy_object")
	require.True(t, ok)
	assert.Equal(t, ScopeOrganization, policyObject.ScopeParam)
	assert.Equal(t, "policy_object_id", policyObject.KeyField())
	update, ok := policyObject.Operation(OpUpdate)
	require.True(t, ok)
	assert.Equal(t, http.MethodPut, update.Method)
	assert.Equal(t, []string{"organizationId", "policyObjectId"}, update.PathParams)
}

func TestLookupByModule(t *testing.T) {
	t.Parallel()

	c := Default()
	byModule, ok := c.Lookup("meraki_appliance_vlans")
	require.True(t, ok)
	assert.Equal(t, "vlan", byModule.Name)

	fqcn, ok := c.Lookup("cisco.meraki_rm.meraki_appliance_vlans")
	require.True(t, ok)
	assert.Equal(t, "vlan", fqcn.Name)

	_, ok = c.Lookup("meraki_nothing")
	assert.False(t, ok)
}

func TestNewRejectsMalformedOperations(t *testing.T) {
	t.Parallel()

	base := func() Descriptor {
		return Descriptor{
			Name:         "vlan",
			Shape:        Collection,
			ScopeParam:   ScopeNetwork,
			CanonicalKey: "vlan_id",
			Aliases:      map[string][]string{"networkId": {"network_id"}, "vlanId": {"vlan_id"}},
			FieldMap:     map[string]string{"vlan_id": "id", "name": "name"},
			Operations: map[OpKind]Operation{
				OpFindAll: {Method: http.MethodGet, Path: "/networks/{networkId}/appliance/vlans", PathParams: []string{"networkId"}},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(d *Descriptor)
		wantErr string
	}{
		{
			name:    "valid",
			mutate:  func(*Descriptor) {},
			wantErr: "",
		},
		{
			name: "placeholder without parameter",
			mutate: func(d *Descriptor) {
				d.Operations[OpDelete] = Operation{Method: http.MethodDelete, Path: "/networks/{networkId}/appliance/vlans/{vlanId}", PathParams: []string{"networkId"}}
			},
			wantErr: "placeholder {vlanId}",
		},
		{
			name: "unsupported method",
			mutate: func(d *Descriptor) {
				d.Operations[OpUpdate] = Operation{Method: http.MethodPatch, Path: "/networks/{networkId}/appliance/vlans", PathParams: []string{"networkId"}}
			},
			wantErr: "method \"PATCH\"",
		},
		{
			name: "allowlist outside schema",
			mutate: func(d *Descriptor) {
				d.Operations[OpCreate] = Operation{Method: http.MethodPost, Path: "/networks/{networkId}/appliance/vlans", PathParams: []string{"networkId"}, Fields: []string{"colour"}}
			},
			wantErr: "allowlist field \"colour\"",
		},
		{
			name:    "singleton with delete",
			mutate:  func(d *Descriptor) { d.Shape = Singleton; d.Operations[OpDelete] = d.Operations[OpFindAll] },
			wantErr: "cannot declare create or delete",
		},
		{
			name:    "unmapped key",
			mutate:  func(d *Descriptor) { d.CanonicalKey = "subnet" },
			wantErr: "key \"subnet\" is not mapped",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d := base()
			tc.mutate(&d)
			_, err := New([]Descriptor{d})
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestParseState(t *testing.T) {
	t.Parallel()

	s, err := ParseState(" Merged ")
	require.NoError(t, err)
	assert.Equal(t, Merged, s)
	assert.True(t, Overridden.Destructive())
	assert.False(t, Gathered.Mutating())

	_, err = ParseState("rendered")
	require.Error(t, err)
}
