package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansible-network/meraki-rm-sub001/api"
	"github.com/ansible-network/meraki-rm-sub001/internal/catalog"
	"github.com/ansible-network/meraki-rm-sub001/internal/config"
)

func TestNewToolRegistry_AppendsResourceTools(t *testing.T) {
	cat := catalog.Default()
	registry, err := NewToolRegistry(api.ToolsContract, cat, config.MCPModeLive)
	require.NoError(t, err)

	listed := registry.List()
	require.Len(t, listed, len(cat.Names())+2)
	assert.Equal(t, "describe_tools", listed[0].Name)
	assert.Equal(t, "meraki_facts", listed[1].Name)

	vlan, ok := registry.Lookup(" meraki_vlan ")
	require.True(t, ok)
	assert.Equal(t, CapabilityWrite, vlan.Capability)
	assert.True(t, vlan.ConfirmationRequired)
	assert.Contains(t, vlan.Description, "Executes the operation against the Meraki API.")
	assert.Equal(t, []string{"network_id"}, vlan.InputSchema["required"])

	facts, ok := registry.Lookup("meraki_facts")
	require.True(t, ok)
	assert.Equal(t, CapabilityRead, facts.Capability)
}

func TestNewToolRegistry_TaskModeDescription(t *testing.T) {
	registry, err := NewToolRegistry(api.ToolsContract, catalog.Default(), config.MCPModeTask)
	require.NoError(t, err)
	vlan, ok := registry.Lookup("meraki_vlan")
	require.True(t, ok)
	assert.Contains(t, vlan.Description, "Returns an Ansible task YAML snippet.")
}

func TestNewToolRegistry_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "malformed yaml", doc: "tools: ["},
		{name: "no tools", doc: "version: \"1.0\"\ntools: []\n"},
		{name: "empty name", doc: "tools:\n  - name: \" \"\n    capability: read\n"},
		{name: "empty capability", doc: "tools:\n  - name: a\n"},
		{name: "duplicate", doc: "tools:\n  - name: a\n    capability: read\n  - name: a\n    capability: read\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewToolRegistry([]byte(tc.doc), nil, config.MCPModeTask)
			require.Error(t, err)
		})
	}
}

func TestNewToolRegistry_ClashWithResourceTool(t *testing.T) {
	_, err := NewToolRegistry([]byte("tools:\n  - name: meraki_vlan\n    capability: read\n"), catalog.Default(), config.MCPModeTask)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}
