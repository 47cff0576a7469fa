package server

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ansible-network/meraki-rm-sub001/internal/catalog"
	"github.com/ansible-network/meraki-rm-sub001/internal/config"
	"github.com/ansible-network/meraki-rm-sub001/internal/tools"
)

const (
	defaultProtocolVersion = "2024-11-05"
	defaultServerName      = "meraki-rm"
)

// Tool capabilities.
const (
	CapabilityRead  = "read"
	CapabilityWrite = "write"
)

// ToolSpec represents a single MCP tool contract entry.
type ToolSpec struct {
	Name                 string         `yaml:"name" json:"name"`
	Capability           string         `yaml:"capability" json:"capability"`
	Description          string         `yaml:"description,omitempty" json:"description,omitempty"`
	ConfirmationRequired bool           `yaml:"confirmationRequired,omitempty" json:"confirmationRequired,omitempty"`
	InputSchema          map[string]any `yaml:"inputSchema,omitempty" json:"inputSchema,omitempty"`
}

type toolContract struct {
	Version    string     `yaml:"version"`
	Service    string     `yaml:"service"`
	APIVersion string     `yaml:"apiVersion"`
	Tools      []ToolSpec `yaml:"tools"`
}

// ToolRegistry provides read-only access to the static tools of the
// contract followed by one tool per catalog resource.
type ToolRegistry struct {
	tools  []ToolSpec
	byName map[string]ToolSpec
}

// NewToolRegistry parses the tools contract YAML, appends the resource tools
// of cat (when non-nil) and validates names and capabilities.
func NewToolRegistry(contractYAML []byte, cat *catalog.Catalog, mode string) (*ToolRegistry, error) {
	var parsed toolContract
	if err := yaml.Unmarshal(contractYAML, &parsed); err != nil {
		return nil, fmt.Errorf("decoding tool contract: %w", err)
	}

	all := parsed.Tools
	if cat != nil {
		all = append(all, resourceTools(cat, mode)...)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("tool contract has no tools")
	}

	registry := &ToolRegistry{
		tools:  make([]ToolSpec, 0, len(all)),
		byName: make(map[string]ToolSpec, len(all)),
	}
	for _, tool := range all {
		name := strings.TrimSpace(tool.Name)
		if name == "" {
			return nil, fmt.Errorf("tool contract contains empty tool name")
		}
		if _, exists := registry.byName[name]; exists {
			return nil, fmt.Errorf("tool contract contains duplicate tool %q", name)
		}
		tool.Name = name
		tool.Capability = strings.TrimSpace(tool.Capability)
		if tool.Capability == "" {
			return nil, fmt.Errorf("tool %q has empty capability", name)
		}
		registry.byName[name] = tool
		registry.tools = append(registry.tools, tool)
	}
	return registry, nil
}

func resourceTools(cat *catalog.Catalog, mode string) []ToolSpec {
	suffix := " Returns an Ansible task YAML snippet."
	if mode == config.MCPModeLive {
		suffix = " Executes the operation against the Meraki API."
	}

	out := make([]ToolSpec, 0, len(cat.Names()))
	for _, d := range cat.All() {
		description := strings.TrimSpace(d.Description)
		if description == "" {
			description = fmt.Sprintf("Manage %s resources.", d.Name)
		}
		out = append(out, ToolSpec{
			Name:                 tools.ToolName(d),
			Capability:           CapabilityWrite,
			Description:          description + suffix,
			ConfirmationRequired: d.SupportsDelete(),
			InputSchema:          tools.InputSchema(d),
		})
	}
	return out
}

// List returns all registered tools in registration order.
func (r *ToolRegistry) List() []ToolSpec {
	items := make([]ToolSpec, 0, len(r.tools))
	items = append(items, r.tools...)
	return items
}

// Lookup returns a tool by name.
func (r *ToolRegistry) Lookup(name string) (ToolSpec, bool) {
	tool, ok := r.byName[strings.TrimSpace(name)]
	return tool, ok
}
