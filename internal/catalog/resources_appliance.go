package catalog

import "net/http"

func applianceResources() []Descriptor {
	return []Descriptor{
		{
			Name:        "appliance_rf_profile",
			Module:      "meraki_appliance_rf_profiles",
			Description: "appliance RF profile",
			Shape:       Collection,
			ScopeParam:  ScopeNetwork,
			SystemKey:   "rf_profile_id",
			Aliases: map[string][]string{
				"networkId":   {"network_id"},
				"rfProfileId": {"rf_profile_id", "id"},
			},
			FieldMap: map[string]string{
				"rf_profile_id":         "id",
				"name":                  "name",
				"two_four_ghz_settings": "twoFourGhzSettings",
				"five_ghz_settings":     "fiveGhzSettings",
				"per_ssid_settings":     "perSsidSettings",
				"assigned":              "assigned",
			},
			Operations: map[OpKind]Operation{
				OpCreate: {
					Method:     http.MethodPost,
					Path:       "/networks/{networkId}/appliance/rfProfiles",
					PathParams: []string{"networkId"},
					Fields:     []string{"name", "twoFourGhzSettings", "fiveGhzSettings", "perSsidSettings"},
				},
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/appliance/rfProfiles/{rfProfileId}",
					PathParams: []string{"networkId", "rfProfileId"},
				},
				OpFindAll: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/appliance/rfProfiles",
					PathParams: []string{"networkId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/networks/{networkId}/appliance/rfProfiles/{rfProfileId}",
					PathParams: []string{"networkId", "rfProfileId"},
					Fields:     []string{"name", "twoFourGhzSettings", "fiveGhzSettings", "perSsidSettings"},
				},
				OpDelete: {
					Method:     http.MethodDelete,
					Path:       "/networks/{networkId}/appliance/rfProfiles/{rfProfileId}",
					PathParams: []string{"networkId", "rfProfileId"},
				},
			},
		},
		{
			Name:        "appliance_ssid",
			Module:      "meraki_appliance_ssid",
			Description: "appliance SSID",
			Shape:       FixedPopulation,
			ScopeParam:  ScopeNetwork,
			SystemKey:   "number",
			Aliases: map[string][]string{
				"networkId": {"network_id"},
				"number":    {"number"},
			},
			FieldMap: map[string]string{
				"number":              "number",
				"name":                "name",
				"enabled":             "enabled",
				"auth_mode":           "authMode",
				"encryption_mode":     "encryptionMode",
				"psk":                 "psk",
				"default_vlan_id":     "defaultVlanId",
				"visible":             "visible",
				"wpa_encryption_mode": "wpaEncryptionMode",
				"radius_servers":      "radiusServers",
			},
			Operations: map[OpKind]Operation{
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/appliance/ssids/{number}",
					PathParams: []string{"networkId", "number"},
				},
				OpFindAll: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/appliance/ssids",
					PathParams: []string{"networkId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/networks/{networkId}/appliance/ssids/{number}",
					PathParams: []string{"networkId", "number"},
					Fields: []string{
						"name", "enabled", "authMode", "encryptionMode", "psk", "defaultVlanId", "visible",
						"wpaEncryptionMode", "radiusServers",
					},
				},
			},
		},
		{
			Name:        "firewall",
			Module:      "meraki_appliance_firewall",
			Description: "appliance firewall",
			Shape:       Singleton,
			ScopeParam:  ScopeNetwork,
			Aliases: map[string][]string{
				"networkId": {"network_id"},
			},
			FieldMap: map[string]string{
				"rules":                  "rules",
				"syslog_default_rule":    "syslogDefaultRule",
				"spoofing_protection":    "spoofingProtection",
				"application_categories": "applicationCategories",
				"access":                 "access",
				"allowed_ips":            "allowedIps",
				"service":                "service",
			},
			Operations: map[OpKind]Operation{
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/appliance/firewall/l3FirewallRules",
					PathParams: []string{"networkId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/networks/{networkId}/appliance/firewall/l3FirewallRules",
					PathParams: []string{"networkId"},
					Fields: []string{
						"rules", "syslogDefaultRule", "spoofingProtection", "applicationCategories", "access",
						"allowedIps", "service",
					},
				},
			},
		},
		{
			Name:        "port",
			Module:      "meraki_appliance_port",
			Description: "appliance port",
			Shape:       FixedPopulation,
			ScopeParam:  ScopeNetwork,
			SystemKey:   "port_id",
			Aliases: map[string][]string{
				"networkId": {"network_id"},
				"portId":    {"port_id", "number"},
			},
			FieldMap: map[string]string{
				"port_id":               "number",
				"enabled":               "enabled",
				"type":                  "type",
				"vlan":                  "vlan",
				"allowed_vlans":         "allowedVlans",
				"access_policy":         "accessPolicy",
				"drop_untagged_traffic": "dropUntaggedTraffic",
			},
			Operations: map[OpKind]Operation{
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/appliance/ports/{portId}",
					PathParams: []string{"networkId", "portId"},
				},
				OpFindAll: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/appliance/ports",
					PathParams: []string{"networkId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/networks/{networkId}/appliance/ports/{portId}",
					PathParams: []string{"networkId", "portId"},
					Fields: []string{
						"enabled", "type", "vlan", "allowedVlans", "accessPolicy", "dropUntaggedTraffic",
					},
				},
			},
		},
		{
			Name:         "prefix",
			Module:       "meraki_appliance_prefixes",
			Description:  "appliance prefix",
			Shape:        Collection,
			ScopeParam:   ScopeNetwork,
			CanonicalKey: "prefix",
			SystemKey:    "static_delegated_prefix_id",
			Aliases: map[string][]string{
				"networkId":               {"network_id"},
				"staticDelegatedPrefixId": {"static_delegated_prefix_id"},
			},
			FieldMap: map[string]string{
				"static_delegated_prefix_id": "staticDelegatedPrefixId",
				"prefix":                     "prefix",
				"description":                "description",
				"origin":                     "origin",
			},
			Operations: map[OpKind]Operation{
				OpCreate: {
					Method:     http.MethodPost,
					Path:       "/networks/{networkId}/appliance/prefixes/delegated/statics",
					PathParams: []string{"networkId"},
					Fields:     []string{"prefix", "description", "origin"},
				},
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/appliance/prefixes/delegated/statics/{staticDelegatedPrefixId}",
					PathParams: []string{"networkId", "staticDelegatedPrefixId"},
				},
				OpFindAll: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/appliance/prefixes/delegated/statics",
					PathParams: []string{"networkId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/networks/{networkId}/appliance/prefixes/delegated/statics/{staticDelegatedPrefixId}",
					PathParams: []string{"networkId", "staticDelegatedPrefixId"},
					Fields:     []string{"prefix", "description", "origin"},
				},
				OpDelete: {
					Method:     http.MethodDelete,
					Path:       "/networks/{networkId}/appliance/prefixes/delegated/statics/{staticDelegatedPrefixId}",
					PathParams: []string{"networkId", "staticDelegatedPrefixId"},
				},
			},
		},
		{
			Name:        "security",
			Module:      "meraki_appliance_security",
			Description: "appliance security",
			Shape:       Singleton,
			ScopeParam:  ScopeNetwork,
			Aliases: map[string][]string{
				"networkId": {"network_id"},
			},
			FieldMap: map[string]string{
				"mode":               "mode",
				"ids_rulesets":       "idsRulesets",
				"protected_networks": "protectedNetworks",
				"allowed_files":      "allowedFiles",
				"allowed_urls":       "allowedUrls",
			},
			Operations: map[OpKind]Operation{
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/appliance/security/intrusion",
					PathParams: []string{"networkId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/networks/{networkId}/appliance/security/intrusion",
					PathParams: []string{"networkId"},
					Fields:     []string{"mode", "idsRulesets", "protectedNetworks"},
				},
			},
		},
		{
			Name:         "static_route",
			Module:       "meraki_appliance_static_routes",
			Description:  "appliance static route",
			Shape:        Collection,
			ScopeParam:   ScopeNetwork,
			CanonicalKey: "name",
			SystemKey:    "static_route_id",
			Aliases: map[string][]string{
				"networkId":     {"network_id"},
				"staticRouteId": {"static_route_id", "id"},
			},
			FieldMap: map[string]string{
				"static_route_id":      "id",
				"name":                 "name",
				"subnet":               "subnet",
				"gateway_ip":           "gatewayIp",
				"gateway_vlan_id":      "gatewayVlanId",
				"enabled":              "enabled",
				"fixed_ip_assignments": "fixedIpAssignments",
				"reserved_ip_ranges":   "reservedIpRanges",
				"ip_version":           "ipVersion",
			},
			Operations: map[OpKind]Operation{
				OpCreate: {
					Method:     http.MethodPost,
					Path:       "/networks/{networkId}/appliance/staticRoutes",
					PathParams: []string{"networkId"},
					Fields: []string{
						"name", "subnet", "gatewayIp", "gatewayVlanId", "enabled", "fixedIpAssignments",
						"reservedIpRanges", "ipVersion",
					},
				},
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/appliance/staticRoutes/{staticRouteId}",
					PathParams: []string{"networkId", "staticRouteId"},
				},
				OpFindAll: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/appliance/staticRoutes",
					PathParams: []string{"networkId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/networks/{networkId}/appliance/staticRoutes/{staticRouteId}",
					PathParams: []string{"networkId", "staticRouteId"},
					Fields: []string{
						"name", "subnet", "gatewayIp", "gatewayVlanId", "enabled", "fixedIpAssignments",
						"reservedIpRanges", "ipVersion",
					},
				},
				OpDelete: {
					Method:     http.MethodDelete,
					Path:       "/networks/{networkId}/appliance/staticRoutes/{staticRouteId}",
					PathParams: []string{"networkId", "staticRouteId"},
				},
			},
		},
		{
			Name:        "traffic_shaping",
			Module:      "meraki_appliance_traffic_shaping",
			Description: "appliance traffic shaping",
			Shape:       Singleton,
			ScopeParam:  ScopeNetwork,
			Aliases: map[string][]string{
				"networkId": {"network_id"},
			},
			FieldMap: map[string]string{
				"default_rules_enabled":          "defaultRulesEnabled",
				"default_uplink":                 "defaultUplink",
				"rules":                          "rules",
				"bandwidth_limits":               "bandwidthLimits",
				"global_bandwidth_limits":        "globalBandwidthLimits",
				"failover_and_failback":          "failoverAndFailback",
				"load_balancing_enabled":         "loadBalancingEnabled",
				"active_active_auto_vpn_enabled": "activeActiveAutoVpnEnabled",
				"vpn_traffic_uplink_preferences": "vpnTrafficUplinkPreferences",
				"wan_traffic_uplink_preferences": "wanTrafficUplinkPreferences",
			},
			Operations: map[OpKind]Operation{
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/appliance/trafficShaping",
					PathParams: []string{"networkId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/networks/{networkId}/appliance/trafficShaping",
					PathParams: []string{"networkId"},
					Fields: []string{
						"defaultRulesEnabled", "defaultUplink", "rules", "bandwidthLimits", "globalBandwidthLimits",
						"failoverAndFailback", "loadBalancingEnabled", "activeActiveAutoVpnEnabled",
						"vpnTrafficUplinkPreferences", "wanTrafficUplinkPreferences",
					},
				},
			},
		},
		{
			Name:         "vlan",
			Module:       "meraki_appliance_vlans",
			Description:  "appliance VLAN",
			Shape:        Collection,
			ScopeParam:   ScopeNetwork,
			CanonicalKey: "vlan_id",
			Aliases: map[string][]string{
				"networkId": {"network_id"},
				"vlanId":    {"vlan_id", "id"},
			},
			FieldMap: map[string]string{
				"vlan_id":                   "id",
				"name":                      "name",
				"subnet":                    "subnet",
				"appliance_ip":              "applianceIp",
				"group_policy_id":           "groupPolicyId",
				"template_vlan_type":        "templateVlanType",
				"cidr":                      "cidr",
				"mask":                      "mask",
				"dhcp_handling":             "dhcpHandling",
				"dhcp_relay_server_ips":     "dhcpRelayServerIps",
				"dhcp_lease_time":           "dhcpLeaseTime",
				"dhcp_boot_options_enabled": "dhcpBootOptionsEnabled",
				"dhcp_boot_next_server":     "dhcpBootNextServer",
				"dhcp_boot_filename":        "dhcpBootFilename",
				"dhcp_options":              "dhcpOptions",
				"dns_nameservers":           "dnsNameservers",
				"reserved_ip_ranges":        "reservedIpRanges",
				"fixed_ip_assignments":      "fixedIpAssignments",
				"ipv6":                      "ipv6",
				"mandatory_dhcp":            "mandatoryDhcp",
			},
			Operations: map[OpKind]Operation{
				OpCreate: {
					Method:     http.MethodPost,
					Path:       "/networks/{networkId}/appliance/vlans",
					PathParams: []string{"networkId"},
					Fields: []string{
						"id", "name", "subnet", "applianceIp", "groupPolicyId", "templateVlanType", "cidr", "mask",
						"dhcpHandling", "dhcpRelayServerIps", "dhcpLeaseTime", "dhcpBootOptionsEnabled",
						"dhcpBootNextServer", "dhcpBootFilename", "dhcpOptions", "dnsNameservers",
						"reservedIpRanges", "fixedIpAssignments", "ipv6", "mandatoryDhcp",
					},
				},
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/appliance/vlans/{vlanId}",
					PathParams: []string{"networkId", "vlanId"},
				},
				OpFindAll: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/appliance/vlans",
					PathParams: []string{"networkId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/networks/{networkId}/appliance/vlans/{vlanId}",
					PathParams: []string{"networkId", "vlanId"},
					Fields: []string{
						"name", "subnet", "applianceIp", "groupPolicyId", "templateVlanType", "cidr", "mask",
						"dhcpHandling", "dhcpRelayServerIps", "dhcpLeaseTime", "dhcpBootOptionsEnabled",
						"dhcpBootNextServer", "dhcpBootFilename", "dhcpOptions", "dnsNameservers",
						"reservedIpRanges", "fixedIpAssignments", "ipv6", "mandatoryDhcp",
					},
				},
				OpDelete: {
					Method:     http.MethodDelete,
					Path:       "/networks/{networkId}/appliance/vlans/{vlanId}",
					PathParams: []string{"networkId", "vlanId"},
				},
			},
		},
		{
			Name:        "vpn",
			Module:      "meraki_appliance_vpn",
			Description: "appliance VPN",
			Shape:       Singleton,
			ScopeParam:  ScopeNetwork,
			Aliases: map[string][]string{
				"networkId": {"network_id"},
			},
			FieldMap: map[string]string{
				"mode":            "mode",
				"hubs":            "hubs",
				"subnets":         "subnets",
				"subnet":          "subnet",
				"enabled":         "enabled",
				"as_number":       "asNumber",
				"ibgp_hold_timer": "ibgpHoldTimer",
				"neighbors":       "neighbors",
			},
			Operations: map[OpKind]Operation{
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/appliance/vpn/siteToSiteVpn",
					PathParams: []string{"networkId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/networks/{networkId}/appliance/vpn/siteToSiteVpn",
					PathParams: []string{"networkId"},
					Fields: []string{
						"mode", "hubs", "subnets", "subnet", "enabled", "asNumber", "ibgpHoldTimer", "neighbors",
					},
				},
			},
		},
		{
			Name:        "warm_spare",
			Module:      "meraki_appliance_warm_spare",
			Description: "appliance warm spare",
			Shape:       Singleton,
			ScopeParam:  ScopeNetwork,
			Aliases: map[string][]string{
				"networkId": {"network_id"},
			},
			FieldMap: map[string]string{
				"enabled":        "enabled",
				"spare_serial":   "spareSerial",
				"uplink_mode":    "uplinkMode",
				"virtual_ip1":    "virtualIp1",
				"virtual_ip2":    "virtualIp2",
				"wan1":           "wan1",
				"wan2":           "wan2",
				"primary_serial": "primarySerial",
			},
			Operations: map[OpKind]Operation{
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/appliance/warmSpare",
					PathParams: []string{"networkId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/networks/{networkId}/appliance/warmSpare",
					PathParams: []string{"networkId"},
					Fields: []string{
						"enabled", "spareSerial", "uplinkMode", "virtualIp1", "virtualIp2", "wan1", "wan2",
						"primarySerial",
					},
				},
			},
		},
	}
}
