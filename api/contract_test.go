package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestOpenAPIContract_ParsesAndHasRequiredPaths(t *testing.T) {
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(OpenAPISpec, &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])

	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	for _, path := range []string{
		"/health",
		"/readiness",
		"/version",
		"/metrics",
		"/v1/resources",
		"/v1/resources/{name}",
		"/v1/resources/{name}/reconcile",
		"/v1/facts",
		"/mcp",
	} {
		assert.Containsf(t, paths, path, "missing path %s", path)
	}
}

func TestToolsContract_ListsStaticTools(t *testing.T) {
	var contract struct {
		Service string `yaml:"service"`
		Tools   []struct {
			Name       string `yaml:"name"`
			Capability string `yaml:"capability"`
		} `yaml:"tools"`
	}
	require.NoError(t, yaml.Unmarshal(ToolsContract, &contract))
	assert.Equal(t, "meraki-rm", contract.Service)

	names := make([]string, 0, len(contract.Tools))
	for _, tool := range contract.Tools {
		assert.Equal(t, "read", tool.Capability)
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"describe_tools", "meraki_facts"}, names)
}
