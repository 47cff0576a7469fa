package task

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ansible-network/meraki-rm-sub001/internal/catalog"
	"github.com/ansible-network/meraki-rm-sub001/internal/reconcile"
)

func vlanDescriptor(t *testing.T) *catalog.Descriptor {
	t.Helper()
	d, ok := catalog.Default().Lookup("vlan")
	require.True(t, ok)
	return d
}

func TestParseArgs(t *testing.T) {
	t.Parallel()

	d := vlanDescriptor(t)
	inv, opts, err := ParseArgs(d, map[string]any{
		"network_id": "N_1",
		"state":      "Replaced",
		"config":     []any{map[string]any{"vlan_id": "10", "name": "data"}},
		"check_mode": true,
		"confirm":    true,
	})
	require.NoError(t, err)

	assert.Equal(t, "vlan", inv.Resource)
	assert.Equal(t, catalog.Replaced, inv.State)
	assert.Equal(t, "N_1", inv.Scope)
	assert.Equal(t, []map[string]any{{"vlan_id": "10", "name": "data"}}, inv.Config)
	assert.Equal(t, Options{CheckMode: true, Confirm: true}, opts)
	assert.True(t, opts.TaskContext().CheckMode)
}

func TestParseArgsDefaultsAndSingleMapping(t *testing.T) {
	t.Parallel()

	d := vlanDescriptor(t)
	inv, opts, err := ParseArgs(d, map[string]any{
		"network_id": "N_1",
		"config":     map[string]any{"vlan_id": "10"},
	})
	require.NoError(t, err)
	assert.Equal(t, catalog.Merged, inv.State)
	assert.Len(t, inv.Config, 1)
	assert.Equal(t, Options{}, opts)
}

func TestParseArgsErrors(t *testing.T) {
	t.Parallel()

	d := vlanDescriptor(t)
	cases := []struct {
		name string
		args map[string]any
		path string
	}{
		{"unknown key", map[string]any{"network_id": "N_1", "organization_id": "O_1"}, "organization_id"},
		{"bad state", map[string]any{"state": "rendered"}, "state"},
		{"state type", map[string]any{"state": 3}, "state"},
		{"config scalar", map[string]any{"config": "x"}, "config"},
		{"config item", map[string]any{"config": []any{"x"}}, "config[0]"},
		{"flag type", map[string]any{"check_mode": "yes"}, "check_mode"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := ParseArgs(d, tc.args)
			require.Error(t, err)
			assert.Equal(t, reconcile.KindValidation, reconcile.KindOf(err))
			var rErr *reconcile.Error
			require.ErrorAs(t, err, &rErr)
			assert.Equal(t, tc.path, rErr.Path)
		})
	}
}

func TestLoadPlaybookTaskList(t *testing.T) {
	t.Parallel()

	tasks, err := LoadPlaybook(strings.NewReader(`
- name: Create data VLAN
  cisco.meraki_rm.meraki_appliance_vlans:
    network_id: N_1
    state: merged
    config:
      - vlan_id: 10
        name: data
  register: out
- meraki_appliance_vlans:
    network_id: N_1
    state: gathered
  check_mode: true
  ignore_errors: true
`))
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, "Create data VLAN", tasks[0].Label())
	assert.Equal(t, "cisco.meraki_rm.meraki_appliance_vlans", tasks[0].Module)
	assert.Nil(t, tasks[0].CheckMode)
	config := tasks[0].Args["config"].([]any)
	assert.Equal(t, float64(10), config[0].(map[string]any)["vlan_id"])

	assert.Equal(t, "task 2 (meraki_appliance_vlans)", tasks[1].Label())
	require.NotNil(t, tasks[1].CheckMode)
	assert.True(t, *tasks[1].CheckMode)
	assert.True(t, tasks[1].IgnoreErrors)
	assert.Equal(t, 1, tasks[1].Index)
}

func TestLoadPlaybookPlays(t *testing.T) {
	t.Parallel()

	tasks, err := LoadPlaybook(strings.NewReader(`
- hosts: localhost
  gather_facts: false
  tasks:
    - meraki_facts: {}
- hosts: localhost
  tasks:
    - meraki_switch_settings:
        network_id: N_1
`))
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "meraki_facts", tasks[0].Module)
	assert.Equal(t, map[string]any{}, tasks[0].Args)
	assert.Equal(t, "meraki_switch_settings", tasks[1].Module)
}

func TestLoadPlaybookErrors(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":                             "empty",
		"tasks: 3":                     "tasks must be a list",
		"name: x":                      "no tasks key",
		"[]":                           "no tasks",
		"- name: only":                 "no module",
		"- a: {}\n  b: {}":             "conflicting modules a, b",
		"- a: [1]":                     "module arguments must be a mapping",
		"- a: {}\n  check_mode: maybe": "check_mode must be a boolean",
		"- just a string":              "must be a mapping",
		"- a: {}\n  name: [x]":         "name must be a string",
		"42":                           "must be a list or a mapping",
		"- hosts: h\n  tasks: {a: 1}":  "tasks must be a list",
	}
	for doc, want := range cases {
		_, err := LoadPlaybook(strings.NewReader(doc))
		require.Error(t, err, doc)
		assert.Contains(t, err.Error(), want, doc)
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	d := vlanDescriptor(t)
	out, err := Render(d, reconcile.Invocation{
		Resource: "vlan",
		State:    catalog.Merged,
		Scope:    "N_1",
		Config:   []map[string]any{{"vlan_id": "10", "name": "data"}},
	}, Options{CheckMode: true})
	require.NoError(t, err)

	text := string(out)
	assert.True(t, strings.HasPrefix(text, "- name: Merged vlan on N_1\n"))
	assert.Contains(t, text, "  cisco.meraki_rm.meraki_appliance_vlans:\n    network_id: N_1\n    state: merged\n")
	assert.Contains(t, text, "  check_mode: true")

	tasks, err := LoadPlaybook(strings.NewReader(text))
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	inv, opts, err := ParseArgs(d, tasks[0].Args)
	require.NoError(t, err)
	assert.Equal(t, "N_1", inv.Scope)
	assert.Equal(t, "data", inv.Config[0]["name"])
	assert.False(t, opts.CheckMode)
	require.NotNil(t, tasks[0].CheckMode)
	assert.True(t, *tasks[0].CheckMode)
}

func TestRenderGatheredOmitsConfig(t *testing.T) {
	t.Parallel()

	d := vlanDescriptor(t)
	out, err := Render(d, reconcile.Invocation{Resource: "vlan", State: catalog.Gathered, Scope: "N_1",
		Config: []map[string]any{{"vlan_id": "1"}}}, Options{})
	require.NoError(t, err)

	var doc []map[string]any
	require.NoError(t, yaml.Unmarshal(out, &doc))
	args := doc[0]["cisco.meraki_rm.meraki_appliance_vlans"].(map[string]any)
	assert.NotContains(t, args, "config")
	assert.Equal(t, "gathered", args["state"])
}
