package catalog

import "net/http"

func devicesResources() []Descriptor {
	return []Descriptor{
		{
			Name:        "device",
			Module:      "meraki_device",
			Description: "device",
			Shape:       Singleton,
			ScopeParam:  ScopeDevice,
			Aliases: map[string][]string{
				"serial": {"serial"},
			},
			FieldMap: map[string]string{
				"name":              "name",
				"tags":              "tags",
				"lat":               "lat",
				"lng":               "lng",
				"address":           "address",
				"notes":             "notes",
				"move_map_marker":   "moveMapMarker",
				"floor_plan_id":     "floorPlanId",
				"switch_profile_id": "switchProfileId",
			},
			Operations: map[OpKind]Operation{
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/devices/{serial}",
					PathParams: []string{"serial"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/devices/{serial}",
					PathParams: []string{"serial"},
					Fields: []string{
						"name", "tags", "lat", "lng", "address", "notes", "moveMapMarker", "floorPlanId",
						"switchProfileId",
					},
				},
			},
		},
		{
			Name:        "device_management_interface",
			Module:      "meraki_device_management_interface",
			Description: "device management interface",
			Shape:       Singleton,
			ScopeParam:  ScopeDevice,
			Aliases: map[string][]string{
				"serial": {"serial"},
			},
			FieldMap: map[string]string{
				"wan1":           "wan1",
				"wan2":           "wan2",
				"ddns_hostnames": "ddnsHostnames",
			},
			Operations: map[OpKind]Operation{
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/devices/{serial}/managementInterface",
					PathParams: []string{"serial"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/devices/{serial}/managementInterface",
					PathParams: []string{"serial"},
					Fields:     []string{"wan1", "wan2", "ddnsHostnames"},
				},
			},
		},
		{
			Name:         "device_switch_routing",
			Module:       "meraki_device_switch_routes",
			Description:  "device switch routing interface",
			Shape:        Collection,
			ScopeParam:   ScopeDevice,
			CanonicalKey: "name",
			SystemKey:    "interface_id",
			Aliases: map[string][]string{
				"interfaceId": {"interface_id", "id"},
				"serial":      {"serial"},
			},
			FieldMap: map[string]string{
				"interface_id":          "interfaceId",
				"name":                  "name",
				"subnet":                "subnet",
				"interface_ip":          "interfaceIp",
				"default_gateway":       "defaultGateway",
				"vlan_id":               "vlanId",
				"multicast_routing":     "multicastRouting",
				"ospf_settings":         "ospfSettings",
				"dhcp_mode":             "dhcpMode",
				"dhcp_relay_server_ips": "dhcpRelayServerIps",
			},
			Operations: map[OpKind]Operation{
				OpCreate: {
					Method:     http.MethodPost,
					Path:       "/devices/{serial}/switch/routing/interfaces",
					PathParams: []string{"serial"},
					Fields: []string{
						"name", "subnet", "interfaceIp", "defaultGateway", "vlanId", "multicastRouting",
						"ospfSettings", "dhcpMode", "dhcpRelayServerIps", "dhcpLeaseTime", "dhcpOptions",
						"dnsNameserversOption", "dnsCustomNameservers", "fixedIpAssignments", "reservedIpRanges",
						"bootOptionsEnabled", "bootNextServer", "bootFileName", "ipv6", "uplinkV4", "uplinkV6",
					},
				},
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/devices/{serial}/switch/routing/interfaces/{interfaceId}",
					PathParams: []string{"serial", "interfaceId"},
				},
				OpFindAll: {
					Method:     http.MethodGet,
					Path:       "/devices/{serial}/switch/routing/interfaces",
					PathParams: []string{"serial"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/devices/{serial}/switch/routing/interfaces/{interfaceId}",
					PathParams: []string{"serial", "interfaceId"},
					Fields: []string{
						"name", "subnet", "interfaceIp", "defaultGateway", "vlanId", "multicastRouting",
						"ospfSettings", "dhcpMode", "dhcpRelayServerIps", "dhcpLeaseTime", "dhcpOptions",
						"dnsNameserversOption", "dnsCustomNameservers", "fixedIpAssignments", "reservedIpRanges",
						"bootOptionsEnabled", "bootNextServer", "bootFileName", "ipv6", "uplinkV4", "uplinkV6",
					},
				},
				OpDelete: {
					Method:     http.MethodDelete,
					Path:       "/devices/{serial}/switch/routing/interfaces/{interfaceId}",
					PathParams: []string{"serial", "interfaceId"},
				},
			},
		},
	}
}
