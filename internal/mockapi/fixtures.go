package mockapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ansible-network/meraki-rm-sub001/internal/httputil"
	"github.com/ansible-network/meraki-rm-sub001/internal/transform"
)

// Fixtures are the read-only inventory served by the facts endpoints.
type Fixtures struct {
	Organizations []map[string]any
	// Networks carry an organizationId.
	Networks []map[string]any
	// Devices carry a networkId and a serial.
	Devices []map[string]any
}

// DefaultFixtures returns one organization with two networks and three
// devices.
func DefaultFixtures() Fixtures {
	return Fixtures{
		Organizations: []map[string]any{
			{"id": "O_100", "name": "Lab Org", "url": "https://dashboard.meraki.com/o/lab"},
		},
		Networks: []map[string]any{
			{"id": "N_1", "organizationId": "O_100", "name": "Branch 1", "productTypes": []any{"appliance", "switch", "wireless"}, "timeZone": "UTC"},
			{"id": "N_2", "organizationId": "O_100", "name": "Branch 2", "productTypes": []any{"wireless", "camera"}, "timeZone": "UTC"},
		},
		Devices: []map[string]any{
			{"serial": "Q2AA-AAAA-0001", "networkId": "N_1", "model": "MX68", "name": "edge", "productType": "appliance"},
			{"serial": "Q2BB-BBBB-0002", "networkId": "N_1", "model": "MS120-8", "name": "access-sw", "productType": "switch"},
			{"serial": "Q2CC-CCCC-0003", "networkId": "N_2", "model": "MR36", "name": "ap-lobby", "productType": "wireless"},
		},
	}
}

func (s *Server) registerFacts(r chi.Router) {
	r.Get("/organizations", func(w http.ResponseWriter, _ *http.Request) {
		httputil.RespondJSON(w, http.StatusOK, s.fixtures.Organizations)
	})
	r.Get("/organizations/{organizationId}/networks", func(w http.ResponseWriter, r *http.Request) {
		orgID := chi.URLParam(r, "organizationId")
		httputil.RespondJSON(w, http.StatusOK, filterBy(s.fixtures.Networks, "organizationId", orgID))
	})
	r.Get("/organizations/{organizationId}/devices", func(w http.ResponseWriter, r *http.Request) {
		httputil.RespondJSON(w, http.StatusOK, s.orgDevices(chi.URLParam(r, "organizationId"), false))
	})
	r.Get("/organizations/{organizationId}/inventory/devices", func(w http.ResponseWriter, r *http.Request) {
		httputil.RespondJSON(w, http.StatusOK, s.orgDevices(chi.URLParam(r, "organizationId"), true))
	})
	r.Get("/networks/{networkId}/devices", func(w http.ResponseWriter, r *http.Request) {
		httputil.RespondJSON(w, http.StatusOK, filterBy(s.fixtures.Devices, "networkId", chi.URLParam(r, "networkId")))
	})
}

// orgDevices lists devices of the organization's networks. Inventory
// entries carry the organization id and a claim marker.
func (s *Server) orgDevices(orgID string, inventory bool) []map[string]any {
	networks := make(map[string]bool)
	for _, n := range filterBy(s.fixtures.Networks, "organizationId", orgID) {
		networks[transform.KeyString(n["id"])] = true
	}
	out := []map[string]any{}
	for _, d := range s.fixtures.Devices {
		if !networks[transform.KeyString(d["networkId"])] {
			continue
		}
		entry := make(map[string]any, len(d)+2)
		for k, v := range d {
			entry[k] = v
		}
		if inventory {
			entry["organizationId"] = orgID
			entry["claimedAt"] = "2024-01-01T00:00:00Z"
		}
		out = append(out, entry)
	}
	return out
}

func filterBy(items []map[string]any, field, value string) []map[string]any {
	out := []map[string]any{}
	for _, item := range items {
		if transform.KeyString(item[field]) == value {
			out = append(out, item)
		}
	}
	return out
}

// population returns the seed of a fixed-population resource; other
// resources start empty.
func population(resource string) []transform.Record {
	switch resource {
	case "ssid":
		return numbered(0, 14, func(i int) transform.Record {
			return transform.Record{"number": float64(i), "name": fmt.Sprintf("Unconfigured SSID %d", i+1), "enabled": false, "authMode": "open"}
		})
	case "appliance_ssid":
		return numbered(1, 4, func(i int) transform.Record {
			return transform.Record{"number": float64(i), "name": fmt.Sprintf("Unconfigured SSID %d", i), "enabled": false, "authMode": "open"}
		})
	case "port":
		return numbered(2, 12, func(i int) transform.Record {
			return transform.Record{"number": float64(i), "enabled": true, "type": "access", "vlan": float64(1), "accessPolicy": "open"}
		})
	case "switch_port":
		return numbered(1, 8, func(i int) transform.Record {
			return transform.Record{"portId": fmt.Sprint(i), "name": "", "enabled": true, "type": "access", "vlan": float64(1)}
		})
	}
	return []transform.Record{}
}

func numbered(from, to int, build func(int) transform.Record) []transform.Record {
	out := make([]transform.Record, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, build(i))
	}
	return out
}

type bodyKey struct{}

func withBody(ctx context.Context, body transform.Record) context.Context {
	return context.WithValue(ctx, bodyKey{}, body)
}

func bodyFrom(ctx context.Context) transform.Record {
	body, _ := ctx.Value(bodyKey{}).(transform.Record)
	return body
}
