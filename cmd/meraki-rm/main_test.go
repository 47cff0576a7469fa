package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansible-network/meraki-rm-sub001/internal/mockapi"
)

type cliResult struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return cliResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func newMockDashboard(t *testing.T) (*mockapi.Server, string) {
	t.Helper()
	mock := mockapi.New(nil)
	srv := httptest.NewServer(mock.Router())
	t.Cleanup(srv.Close)
	return mock, srv.URL + mockapi.APIPrefix
}

func TestRun_UsageAndUnknownCommand(t *testing.T) {
	res := runCLI(t, "")
	assert.Equal(t, 2, res.code)
	assert.Contains(t, res.stderr, "Usage: meraki-rm")

	res = runCLI(t, "", "--help")
	assert.Equal(t, 0, res.code)

	res = runCLI(t, "", "frobnicate")
	assert.Equal(t, 2, res.code)
	assert.Contains(t, res.stderr, `unknown command "frobnicate"`)
}

func TestRun_SubcommandHelp(t *testing.T) {
	res := runCLI(t, "", "apply", "--help")
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stderr, "Usage: meraki-rm apply <resource> <state>")
	assert.Contains(t, res.stderr, "Reconcile one resource.")
	assert.Contains(t, res.stderr, "--scope")
}

func TestRun_Version(t *testing.T) {
	res := runCLI(t, "", "version")
	require.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "meraki-rm dev")
}

func TestRun_ResourcesAndDescribe(t *testing.T) {
	res := runCLI(t, "", "resources")
	require.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "NAME")
	assert.Contains(t, res.stdout, "cisco.meraki_rm.meraki_appliance_vlans")

	res = runCLI(t, "", "describe", "meraki_appliance_vlans", "-o", "json")
	require.Equal(t, 0, res.code, res.stderr)
	var detail map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &detail))
	assert.Equal(t, "meraki_vlan", detail["name"])
	assert.Equal(t, "network_id", detail["scope_param"])

	res = runCLI(t, "", "describe", "nope")
	assert.Equal(t, 1, res.code)
}

func TestRun_ApplyAgainstMock(t *testing.T) {
	mock, url := newMockDashboard(t)
	common := []string{"--dashboard-url", url, "--api-key", "k", "--log-level", "error"}

	args := append([]string{"apply", "vlan", "merged", "--scope", "N_1",
		"--set", "vlan_id=10", "--set", "name=data", "--set", "subnet=10.0.10.0/24", "-o", "json"}, common...)
	res := runCLI(t, "", args...)
	require.Equal(t, 0, res.code, res.stderr)

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &out))
	assert.Equal(t, true, out["changed"])
	assert.Len(t, mock.Mutations(), 1)

	res = runCLI(t, "", args...)
	require.Equal(t, 0, res.code, res.stderr)
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &out))
	assert.Equal(t, false, out["changed"])
}

func TestRun_ApplyFailures(t *testing.T) {
	_, url := newMockDashboard(t)
	common := []string{"--dashboard-url", url, "--api-key", "k", "--log-level", "error"}

	res := runCLI(t, "", append([]string{"apply", "vlan", "merged", "--scope", "N_1", "--set", "bogus=1"}, common...)...)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "failed: true")

	res = runCLI(t, "", append([]string{"apply", "vlan", "sideways", "--scope", "N_1"}, common...)...)
	assert.Equal(t, 1, res.code)

	res = runCLI(t, "", append([]string{"apply", "vlan"}, common...)...)
	assert.Equal(t, 1, res.code)
}

func TestRun_ApplyConfigFromStdin(t *testing.T) {
	mock, url := newMockDashboard(t)
	stdin := `
config:
  - vlan_id: "20"
    name: voice
    subnet: 10.0.20.0/24
`
	res := runCLI(t, stdin, "apply", "vlan", "merged", "--scope", "N_2", "--config", "-", "--check",
		"--dashboard-url", url, "--api-key", "k", "--log-level", "error")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "check_mode: true")
	assert.Empty(t, mock.Mutations())
}

func TestRun_Playbook(t *testing.T) {
	mock, url := newMockDashboard(t)
	playbook := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(playbook, []byte(`
- name: data vlan
  cisco.meraki_rm.meraki_appliance_vlans:
    network_id: N_1
    config:
      - vlan_id: "10"
        name: data
        subnet: 10.0.10.0/24
- name: voice vlan
  meraki_appliance_vlans:
    network_id: N_2
    config:
      - vlan_id: "20"
        name: voice
        subnet: 10.0.20.0/24
`), 0o600))

	res := runCLI(t, "", "run", playbook, "--dashboard-url", url, "--api-key", "k", "--log-level", "error")
	require.Equal(t, 0, res.code, res.stdout+res.stderr)
	assert.Contains(t, res.stdout, "changed: [data vlan]")
	assert.Contains(t, res.stdout, "changed: [voice vlan]")
	assert.Contains(t, res.stdout, "RECAP ok=2 changed=2 failed=0")
	assert.Len(t, mock.Mutations(), 2)

	res = runCLI(t, "", "run", filepath.Join(t.TempDir(), "missing.yaml"), "--api-key", "k")
	assert.Equal(t, 1, res.code)
}

func TestRun_Facts(t *testing.T) {
	_, url := newMockDashboard(t)
	res := runCLI(t, "", "facts", "--organization-id", "O_100", "--gather-subset", "networks",
		"--dashboard-url", url, "--api-key", "k", "--log-level", "error")
	require.Equal(t, 0, res.code, res.stderr)

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &out))
	assert.Len(t, out["meraki_networks"], 2)

	res = runCLI(t, "", "facts", "--gather-subset", "clients", "--api-key", "k")
	assert.Equal(t, 1, res.code)
}

func TestRun_MCPTaskMode(t *testing.T) {
	stdin := `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"meraki_vlan","arguments":{"network_id":"N_1","state":"gathered"}}}` + "\n"
	res := runCLI(t, stdin, "mcp", "--mode", "task", "--log-level", "error")
	require.Equal(t, 0, res.code, res.stderr)

	var resp map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(res.stdout)), &resp))
	result := resp["result"].(map[string]any)
	assert.Equal(t, false, result["isError"])
	text := result["content"].([]any)[0].(map[string]any)["text"].(string)
	assert.Contains(t, text, "state: gathered")
}

func TestRun_MissingAPIKey(t *testing.T) {
	if os.Getenv("MERAKI_API_KEY") != "" {
		t.Skip("MERAKI_API_KEY is set")
	}
	res := runCLI(t, "", "facts")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "MERAKI_API_KEY is required")
}

func TestLoadConfig(t *testing.T) {
	entries, err := loadConfig(nil, "", []string{"vlan_id=10", "name=data", "enabled=true", "note="})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 10, entries[0]["vlan_id"])
	assert.Equal(t, true, entries[0]["enabled"])
	assert.Equal(t, "", entries[0]["note"])

	_, err = loadConfig(nil, "", []string{"novalue"})
	require.Error(t, err)
	_, err = loadConfig(nil, "x.yaml", []string{"a=b"})
	require.Error(t, err)

	entries, err = loadConfig(nil, "", nil)
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestDecodeConfigDocument(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    int
		wantErr bool
	}{
		{name: "list", doc: "- a: 1\n- a: 2\n", want: 2},
		{name: "single mapping", doc: "a: 1\nb: 2\n", want: 1},
		{name: "config key", doc: "config:\n  - a: 1\n", want: 1},
		{name: "json", doc: `[{"a": 1}]`, want: 1},
		{name: "empty", doc: "", want: 0},
		{name: "scalar", doc: "hello", wantErr: true},
		{name: "non-mapping entry", doc: "- 1\n", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := decodeConfigDocument([]byte(tc.doc))
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tc.want)
		})
	}
}

func TestWriteOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeOutput(&buf, "yaml", map[string]any{"changed": true}))
	assert.Equal(t, "changed: true\n", buf.String())

	buf.Reset()
	require.NoError(t, writeOutput(&buf, "json", map[string]any{"changed": true}))
	assert.JSONEq(t, `{"changed": true}`, buf.String())

	require.Error(t, writeOutput(&buf, "xml", nil))
}
