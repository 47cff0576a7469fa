package reconcile

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"

	"github.com/ansible-network/meraki-rm-sub001/internal/transform"
)

// Diff pairs the snapshots around a reconcile.
type Diff struct {
	Before []transform.Record `json:"before"`
	After  []transform.Record `json:"after"`
	// Prepared is a unified diff of the YAML renderings, set in diff mode.
	Prepared string `json:"prepared,omitempty"`
}

// renderDiff returns a unified diff of before and after rendered as YAML
// with sorted keys. Identical snapshots render as an empty string.
func renderDiff(resource string, before, after []transform.Record) (string, error) {
	a, err := yamlLines(before)
	if err != nil {
		return "", err
	}
	b, err := yamlLines(after)
	if err != nil {
		return "", err
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        a,
		B:        b,
		FromFile: resource + " (before)",
		ToFile:   resource + " (after)",
		Context:  3,
	})
}

func yamlLines(records []transform.Record) ([]string, error) {
	plain := make([]map[string]any, 0, len(records))
	for _, r := range records {
		plain = append(plain, map[string]any(r))
	}
	raw, err := yaml.Marshal(plain)
	if err != nil {
		return nil, fmt.Errorf("rendering diff: %w", err)
	}
	return difflib.SplitLines(string(raw)), nil
}
