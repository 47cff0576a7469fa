package task

import (
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Task is one playbook entry: a module call with its arguments.
type Task struct {
	Name   string
	Module string
	Args   map[string]any
	// CheckMode and Diff are the task-level keywords; nil inherits the run flag.
	CheckMode    *bool
	Diff         *bool
	IgnoreErrors bool
	// Index is the zero-based position in the playbook.
	Index int
}

// Label names the task in reports.
func (t Task) Label() string {
	if t.Name != "" {
		return t.Name
	}
	return fmt.Sprintf("task %d (%s)", t.Index+1, t.Module)
}

// ignoredKeywords are task keywords accepted and not acted upon.
var ignoredKeywords = []string{"register", "tags", "when", "delegate_to", "connection", "vars", "no_log"}

// LoadPlaybook reads tasks from YAML. The document may be a task list, a
// mapping with a tasks key or a list of plays each holding tasks.
func LoadPlaybook(r io.Reader) ([]Task, error) {
	var doc any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("playbook is empty")
		}
		return nil, fmt.Errorf("decoding playbook: %w", err)
	}

	items, err := taskItems(doc)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("playbook has no tasks")
	}

	tasks := make([]Task, 0, len(items))
	for i, item := range items {
		t, err := parseTask(i, item)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func taskItems(doc any) ([]any, error) {
	switch typed := doc.(type) {
	case map[string]any:
		raw, ok := typed["tasks"]
		if !ok {
			return nil, fmt.Errorf("playbook mapping has no tasks key")
		}
		list, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("tasks must be a list")
		}
		return list, nil
	case []any:
		var plays []any
		for _, item := range typed {
			play, ok := item.(map[string]any)
			if !ok {
				return typed, nil
			}
			tasks, isPlay := play["tasks"]
			if !isPlay {
				return typed, nil
			}
			list, ok := tasks.([]any)
			if !ok {
				return nil, fmt.Errorf("tasks must be a list")
			}
			plays = append(plays, list...)
		}
		return plays, nil
	default:
		return nil, fmt.Errorf("playbook must be a list or a mapping, got %T", doc)
	}
}

func parseTask(index int, item any) (Task, error) {
	fields, ok := item.(map[string]any)
	if !ok {
		return Task{}, fmt.Errorf("task %d: must be a mapping", index+1)
	}

	t := Task{Index: index}
	var modules []string
	for key, value := range fields {
		switch {
		case key == "name":
			name, ok := value.(string)
			if !ok {
				return Task{}, fmt.Errorf("task %d: name must be a string", index+1)
			}
			t.Name = strings.TrimSpace(name)
		case key == "check_mode":
			flag, err := boolKeyword(index, key, value)
			if err != nil {
				return Task{}, err
			}
			t.CheckMode = &flag
		case key == "diff":
			flag, err := boolKeyword(index, key, value)
			if err != nil {
				return Task{}, err
			}
			t.Diff = &flag
		case key == "ignore_errors":
			flag, err := boolKeyword(index, key, value)
			if err != nil {
				return Task{}, err
			}
			t.IgnoreErrors = flag
		case slices.Contains(ignoredKeywords, key):
		default:
			modules = append(modules, key)
		}
	}

	switch len(modules) {
	case 0:
		return Task{}, fmt.Errorf("task %d: no module", index+1)
	case 1:
	default:
		sort.Strings(modules)
		return Task{}, fmt.Errorf("task %d: conflicting modules %s", index+1, strings.Join(modules, ", "))
	}
	t.Module = modules[0]

	args, err := normalizeArgs(fields[t.Module])
	if err != nil {
		return Task{}, fmt.Errorf("task %d (%s): %w", index+1, t.Module, err)
	}
	t.Args = args
	return t, nil
}

func boolKeyword(index int, key string, value any) (bool, error) {
	flag, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("task %d: %s must be a boolean", index+1, key)
	}
	return flag, nil
}

// normalizeArgs round-trips module arguments through JSON so numbers and
// nested mappings have the same types as API and MCP input.
func normalizeArgs(raw any) (map[string]any, error) {
	if raw == nil {
		return map[string]any{}, nil
	}
	if _, ok := raw.(map[string]any); !ok {
		return nil, fmt.Errorf("module arguments must be a mapping, got %T", raw)
	}
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("encoding arguments: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(encoded, &out); err != nil {
		return nil, fmt.Errorf("decoding arguments: %w", err)
	}
	return out, nil
}
