package task

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ansible-network/meraki-rm-sub001/internal/catalog"
	"github.com/ansible-network/meraki-rm-sub001/internal/reconcile"
)

// Render writes inv as a single-task YAML list, ready to paste into a
// playbook.
func Render(d *catalog.Descriptor, inv reconcile.Invocation, opts Options) ([]byte, error) {
	args := &yaml.Node{Kind: yaml.MappingNode}
	if err := appendPair(args, string(d.ScopeParam), inv.Scope); err != nil {
		return nil, err
	}
	if err := appendPair(args, ArgState, string(inv.State)); err != nil {
		return nil, err
	}
	if inv.State != catalog.Gathered && len(inv.Config) > 0 {
		if err := appendPair(args, ArgConfig, inv.Config); err != nil {
			return nil, err
		}
	}

	item := &yaml.Node{Kind: yaml.MappingNode}
	if err := appendPair(item, "name", fmt.Sprintf("%s %s on %s", titleState(inv.State), d.Name, inv.Scope)); err != nil {
		return nil, err
	}
	item.Content = append(item.Content, scalar(FQCN(d)), args)
	if opts.CheckMode {
		if err := appendPair(item, ArgCheckMode, true); err != nil {
			return nil, err
		}
	}
	if opts.Diff {
		if err := appendPair(item, ArgDiff, true); err != nil {
			return nil, err
		}
	}

	doc := &yaml.Node{Kind: yaml.SequenceNode, Content: []*yaml.Node{item}}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("rendering task: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("rendering task: %w", err)
	}
	return buf.Bytes(), nil
}

func appendPair(m *yaml.Node, key string, value any) error {
	var v yaml.Node
	if err := v.Encode(value); err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	m.Content = append(m.Content, scalar(key), &v)
	return nil
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func titleState(s catalog.State) string {
	name := string(s)
	if name == "" {
		return name
	}
	return string(name[0]-'a'+'A') + name[1:]
}
