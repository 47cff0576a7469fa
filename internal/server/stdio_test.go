package server

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansible-network/meraki-rm-sub001/api"
	"github.com/ansible-network/meraki-rm-sub001/internal/config"
	"github.com/ansible-network/meraki-rm-sub001/internal/policy"
	"github.com/ansible-network/meraki-rm-sub001/internal/tools"
)

func mustTaskMCP(t *testing.T) MCP {
	t.Helper()
	runner, err := tools.NewRunner(nil, tools.Config{Mode: config.MCPModeTask}, nil, nil)
	require.NoError(t, err)
	registry, err := NewToolRegistry(api.ToolsContract, runner.Catalog(), runner.Mode())
	require.NoError(t, err)
	return MCP{
		Registry:   registry,
		Authorizer: mustReadOnlyGuard(t),
		Caller:     runner,
		Version:    "test-version",
		Logger:     zerolog.Nop(),
	}
}

func mustReadOnlyGuard(t *testing.T) *policy.Guard {
	t.Helper()
	guard, err := policy.NewGuard(policy.ModeReadOnly, false)
	require.NoError(t, err)
	return guard
}

func runStdioLines(t *testing.T, mcp MCP, lines ...string) []rpcResponse {
	t.Helper()
	in := bytes.NewBufferString(strings.Join(lines, "\n") + "\n")
	out := &bytes.Buffer{}
	require.NoError(t, RunStdio(context.Background(), in, out, mcp))

	var responses []rpcResponse
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if line == "" {
			continue
		}
		var resp rpcResponse
		require.NoError(t, json.Unmarshal([]byte(line), &resp))
		responses = append(responses, resp)
	}
	return responses
}

func TestRunStdio_InitializeListAndCall(t *testing.T) {
	mcp := mustTaskMCP(t)

	responses := runStdioLines(t, mcp,
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list","params":{}}`,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"meraki_vlan","arguments":{"network_id":"N_1","config":[{"vlan_id":"10","name":"data"}]}}}`,
	)
	require.Len(t, responses, 3)

	require.Nil(t, responses[0].Error)
	initMap, ok := responses[0].Result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, defaultProtocolVersion, initMap["protocolVersion"])
	assert.Equal(t, "test-version", initMap["serverInfo"].(map[string]any)["version"])

	require.Nil(t, responses[1].Error)
	listed := responses[1].Result.(map[string]any)["tools"].([]any)
	assert.Len(t, listed, len(mcp.Registry.List()))
	assert.Equal(t, "describe_tools", listed[0].(map[string]any)["name"])

	require.Nil(t, responses[2].Error)
	callMap := responses[2].Result.(map[string]any)
	assert.Equal(t, false, callMap["isError"])
	text := callMap["content"].([]any)[0].(map[string]any)["text"].(string)
	assert.Contains(t, text, "cisco.meraki_rm.meraki_appliance_vlans:")
	structured := callMap["structuredContent"].(map[string]any)
	assert.Equal(t, "ok", structured["status"])
	assert.Equal(t, policy.ModeReadOnly, structured["mode"])
}

func TestRunStdio_ToolFailureIsResult(t *testing.T) {
	responses := runStdioLines(t, mustTaskMCP(t),
		`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"meraki_vlan","arguments":{"state":"merged"}}}`,
	)
	require.Len(t, responses, 1)
	require.Nil(t, responses[0].Error)

	callMap := responses[0].Result.(map[string]any)
	assert.Equal(t, true, callMap["isError"])
	failure := callMap["structuredContent"].(map[string]any)["error"].(map[string]any)
	assert.Equal(t, float64(400), failure["status"])
}

func TestRunStdio_ProtocolErrors(t *testing.T) {
	responses := runStdioLines(t, mustTaskMCP(t),
		`not json`,
		`{"jsonrpc":"1.0","id":1,"method":"ping"}`,
		`{"jsonrpc":"2.0","id":2,"method":"nope","params":{}}`,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call"}`,
		`{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"meraki_nope"}}`,
		`{"jsonrpc":"2.0","id":5,"method":"ping"}`,
	)
	require.Len(t, responses, 6)

	assert.Equal(t, rpcCodeInvalidRequest, responses[0].Error.Code)
	assert.Equal(t, rpcCodeInvalidRequest, responses[1].Error.Code)
	assert.Equal(t, rpcCodeMethodNotFound, responses[2].Error.Code)
	assert.Equal(t, rpcCodeInvalidParams, responses[3].Error.Code)
	assert.Equal(t, rpcCodeInvalidParams, responses[4].Error.Code)
	assert.Contains(t, responses[4].Error.Message, "unknown tool")
	assert.Nil(t, responses[5].Error)
}

func TestRunStdio_MissingCaller(t *testing.T) {
	mcp := mustTaskMCP(t)
	mcp.Caller = nil

	responses := runStdioLines(t, mcp,
		`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"describe_tools"}}`,
	)
	require.Len(t, responses, 1)
	require.NotNil(t, responses[0].Error)
	assert.Equal(t, rpcCodeInternalError, responses[0].Error.Code)
}

func TestRunStdio_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := bytes.NewBufferString(`{"jsonrpc":"2.0","id":1,"method":"ping"}` + "\n")
	err := RunStdio(ctx, in, &bytes.Buffer{}, mustTaskMCP(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunStdio_CapabilityDenied(t *testing.T) {
	runner, err := tools.NewRunner(nil, tools.Config{Mode: config.MCPModeTask}, nil, nil)
	require.NoError(t, err)
	registry, err := NewToolRegistry([]byte("tools:\n  - name: describe_tools\n    capability: admin\n"), nil, config.MCPModeTask)
	require.NoError(t, err)

	responses := runStdioLines(t, MCP{Registry: registry, Caller: runner, Logger: zerolog.Nop()},
		`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"describe_tools","arguments":{}}}`,
	)
	require.Len(t, responses, 1)
	require.Nil(t, responses[0].Error)

	callMap := responses[0].Result.(map[string]any)
	assert.Equal(t, true, callMap["isError"])
	structured := callMap["structuredContent"].(map[string]any)
	assert.Equal(t, policy.ModeReadOnly, structured["mode"])
	errMap := structured["error"].(map[string]any)
	assert.Equal(t, float64(403), errMap["status"])
	assert.Contains(t, errMap["message"], `unknown capability "admin"`)
}

func TestRunStdio_NilAuthorizerUsesReadOnlyGuard(t *testing.T) {
	mcp := mustTaskMCP(t)
	mcp.Authorizer = nil

	responses := runStdioLines(t, mcp,
		`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"describe_tools","arguments":{}}}`,
	)
	require.Len(t, responses, 1)
	callMap := responses[0].Result.(map[string]any)
	assert.Equal(t, false, callMap["isError"])
	assert.Equal(t, policy.ModeReadOnly, callMap["structuredContent"].(map[string]any)["mode"])
}
