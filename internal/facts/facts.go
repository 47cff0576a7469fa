// Package facts gathers organization, network, device and inventory facts
// from the Dashboard API.
package facts

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ansible-network/meraki-rm-sub001/pkg/dashboard"
)

// Subsets accepted in Request.GatherSubset.
const (
	SubsetAll           = "all"
	SubsetOrganizations = "organizations"
	SubsetNetworks      = "networks"
	SubsetDevices       = "devices"
	SubsetInventory     = "inventory"
)

var knownSubsets = []string{SubsetAll, SubsetOrganizations, SubsetNetworks, SubsetDevices, SubsetInventory}

// Client is the transport used to read facts.
type Client interface {
	Request(ctx context.Context, method, path string, params map[string]string, body any) (*dashboard.Response, error)
}

// Request selects what to gather. Networks, devices and inventory need an
// organization id; a network id narrows networks and devices.
type Request struct {
	GatherSubset   []string `json:"gather_subset,omitempty" yaml:"gather_subset,omitempty"`
	OrganizationID string   `json:"organization_id,omitempty" yaml:"organization_id,omitempty"`
	NetworkID      string   `json:"network_id,omitempty" yaml:"network_id,omitempty"`
}

// Facts is the gathered data in Dashboard wire form. Subsets not gathered
// are nil.
type Facts struct {
	Organizations []map[string]any `json:"organizations,omitempty"`
	Networks      []map[string]any `json:"networks,omitempty"`
	Devices       []map[string]any `json:"devices,omitempty"`
	Inventory     []map[string]any `json:"inventory,omitempty"`
}

// AnsibleFacts renders f under the meraki_* fact names.
func (f *Facts) AnsibleFacts() map[string]any {
	return map[string]any{
		"meraki_organizations": orEmpty(f.Organizations),
		"meraki_networks":      orEmpty(f.Networks),
		"meraki_devices":       orEmpty(f.Devices),
		"meraki_inventory":     orEmpty(f.Inventory),
	}
}

// Validate normalizes the subset list, defaulting to all.
func (r *Request) Validate() error {
	subsets := make([]string, 0, len(r.GatherSubset))
	for _, s := range r.GatherSubset {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if !slices.Contains(knownSubsets, s) {
			return fmt.Errorf("gather_subset: unknown subset %q (allowed: %s)", s, strings.Join(knownSubsets, ", "))
		}
		if !slices.Contains(subsets, s) {
			subsets = append(subsets, s)
		}
	}
	if len(subsets) == 0 {
		subsets = []string{SubsetAll}
	}
	r.GatherSubset = subsets
	r.OrganizationID = strings.TrimSpace(r.OrganizationID)
	r.NetworkID = strings.TrimSpace(r.NetworkID)
	return nil
}

func (r *Request) wants(subset string) bool {
	return slices.Contains(r.GatherSubset, SubsetAll) || slices.Contains(r.GatherSubset, subset)
}

// Gather reads the selected subsets concurrently.
func Gather(ctx context.Context, client Client, req Request) (*Facts, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	out := &Facts{}
	g, gctx := errgroup.WithContext(ctx)
	list := func(dst *[]map[string]any, path string, params map[string]string, keep func(map[string]any) bool) {
		g.Go(func() error {
			resp, err := client.Request(gctx, http.MethodGet, path, params, nil)
			if err != nil {
				return fmt.Errorf("gathering %s: %w", path, err)
			}
			records := resp.Records()
			if keep != nil {
				records = slices.DeleteFunc(records, func(m map[string]any) bool { return !keep(m) })
			}
			*dst = records
			return nil
		})
	}

	if req.wants(SubsetOrganizations) {
		list(&out.Organizations, "/organizations", nil, nil)
	}
	if req.OrganizationID != "" {
		org := map[string]string{"organizationId": req.OrganizationID}
		if req.wants(SubsetNetworks) {
			list(&out.Networks, "/organizations/{organizationId}/networks", org, matchField("id", req.NetworkID))
		}
		if req.wants(SubsetDevices) {
			list(&out.Devices, "/organizations/{organizationId}/devices", org, matchField("networkId", req.NetworkID))
		}
		if req.wants(SubsetInventory) {
			list(&out.Inventory, "/organizations/{organizationId}/inventory/devices", org, nil)
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func matchField(field, want string) func(map[string]any) bool {
	if want == "" {
		return nil
	}
	return func(m map[string]any) bool {
		got, _ := m[field].(string)
		return got == want
	}
}

func orEmpty(records []map[string]any) []map[string]any {
	if records == nil {
		return []map[string]any{}
	}
	return records
}
