package catalog

import "net/http"

func switchResources() []Descriptor {
	return []Descriptor{
		{
			Name:        "switch_access_policy",
			Module:      "meraki_switch_access_policies",
			Description: "switch access policy",
			Shape:       Collection,
			ScopeParam:  ScopeNetwork,
			SystemKey:   "access_policy_number",
			Aliases: map[string][]string{
				"accessPolicyNumber": {"access_policy_number"},
				"networkId":          {"network_id"},
			},
			FieldMap: map[string]string{
				"access_policy_number":               "accessPolicyNumber",
				"name":                               "name",
				"access_policy_type":                 "accessPolicyType",
				"host_mode":                          "hostMode",
				"radius_servers":                     "radiusServers",
				"radius_accounting_servers":          "radiusAccountingServers",
				"radius_accounting_enabled":          "radiusAccountingEnabled",
				"radius_coa_support_enabled":         "radiusCoaSupportEnabled",
				"guest_vlan_id":                      "guestVlanId",
				"dot1x":                              "dot1x",
				"radius_group_attribute":             "radiusGroupAttribute",
				"url_redirect_walled_garden_enabled": "urlRedirectWalledGardenEnabled",
				"url_redirect_walled_garden_ranges":  "urlRedirectWalledGardenRanges",
				"voice_vlan_clients":                 "voiceVlanClients",
			},
			Operations: map[OpKind]Operation{
				OpCreate: {
					Method:     http.MethodPost,
					Path:       "/networks/{networkId}/switch/accessPolicies",
					PathParams: []string{"networkId"},
					Fields: []string{
						"accessPolicyNumber", "name", "accessPolicyType", "hostMode", "radiusServers",
						"radiusAccountingServers", "radiusAccountingEnabled", "radiusCoaSupportEnabled",
						"guestVlanId", "dot1x", "radiusGroupAttribute", "urlRedirectWalledGardenEnabled",
						"urlRedirectWalledGardenRanges", "voiceVlanClients",
					},
				},
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/switch/accessPolicies/{accessPolicyNumber}",
					PathParams: []string{"networkId", "accessPolicyNumber"},
				},
				OpFindAll: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/switch/accessPolicies",
					PathParams: []string{"networkId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/networks/{networkId}/switch/accessPolicies/{accessPolicyNumber}",
					PathParams: []string{"networkId", "accessPolicyNumber"},
					Fields: []string{
						"name", "accessPolicyType", "hostMode", "radiusServers", "radiusAccountingServers",
						"radiusAccountingEnabled", "radiusCoaSupportEnabled", "guestVlanId", "dot1x",
						"radiusGroupAttribute", "urlRedirectWalledGardenEnabled", "urlRedirectWalledGardenRanges",
						"voiceVlanClients",
					},
				},
				OpDelete: {
					Method:     http.MethodDelete,
					Path:       "/networks/{networkId}/switch/accessPolicies/{accessPolicyNumber}",
					PathParams: []string{"networkId", "accessPolicyNumber"},
				},
			},
		},
		{
			Name:        "switch_dhcp_policy",
			Module:      "meraki_switch_dhcp_policy",
			Description: "switch DHCP policy",
			Shape:       Singleton,
			ScopeParam:  ScopeNetwork,
			Aliases: map[string][]string{
				"networkId": {"network_id"},
			},
			FieldMap: map[string]string{
				"default_policy":         "defaultPolicy",
				"allowed_servers":        "allowedServers",
				"blocked_servers":        "blockedServers",
				"always_allowed_servers": "alwaysAllowedServers",
				"arp_inspection":         "arpInspection",
				"alerts":                 "alerts",
			},
			Operations: map[OpKind]Operation{
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/switch/dhcpServerPolicy",
					PathParams: []string{"networkId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/networks/{networkId}/switch/dhcpServerPolicy",
					PathParams: []string{"networkId"},
					Fields: []string{
						"defaultPolicy", "allowedServers", "blockedServers", "alwaysAllowedServers", "arpInspection",
						"alerts",
					},
				},
			},
		},
		{
			Name:        "switch_link_aggregation",
			Module:      "meraki_switch_link_aggregations",
			Description: "switch link aggregation",
			Shape:       Collection,
			ScopeParam:  ScopeNetwork,
			SystemKey:   "link_aggregation_id",
			Aliases: map[string][]string{
				"linkAggregationId": {"link_aggregation_id", "id"},
				"networkId":         {"network_id"},
			},
			FieldMap: map[string]string{
				"link_aggregation_id":  "id",
				"switch_ports":         "switchPorts",
				"switch_profile_ports": "switchProfilePorts",
			},
			Operations: map[OpKind]Operation{
				OpCreate: {
					Method:     http.MethodPost,
					Path:       "/networks/{networkId}/switch/linkAggregations",
					PathParams: []string{"networkId"},
					Fields:     []string{"switchPorts", "switchProfilePorts"},
				},
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/switch/linkAggregations/{linkAggregationId}",
					PathParams: []string{"networkId", "linkAggregationId"},
				},
				OpFindAll: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/switch/linkAggregations",
					PathParams: []string{"networkId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/networks/{networkId}/switch/linkAggregations/{linkAggregationId}",
					PathParams: []string{"networkId", "linkAggregationId"},
					Fields:     []string{"switchPorts", "switchProfilePorts"},
				},
				OpDelete: {
					Method:     http.MethodDelete,
					Path:       "/networks/{networkId}/switch/linkAggregations/{linkAggregationId}",
					PathParams: []string{"networkId", "linkAggregationId"},
				},
			},
		},
		{
			Name:        "switch_port",
			Module:      "meraki_switch_ports",
			Description: "switch port",
			Shape:       FixedPopulation,
			ScopeParam:  ScopeDevice,
			SystemKey:   "port_id",
			Aliases: map[string][]string{
				"portId": {"port_id"},
				"serial": {"serial"},
			},
			FieldMap: map[string]string{
				"port_id":                     "portId",
				"name":                        "name",
				"tags":                        "tags",
				"enabled":                     "enabled",
				"type":                        "type",
				"vlan":                        "vlan",
				"voice_vlan":                  "voiceVlan",
				"allowed_vlans":               "allowedVlans",
				"poe_enabled":                 "poeEnabled",
				"isolation_enabled":           "isolationEnabled",
				"rstp_enabled":                "rstpEnabled",
				"stp_guard":                   "stpGuard",
				"link_negotiation":            "linkNegotiation",
				"port_schedule_id":            "portScheduleId",
				"udld":                        "udld",
				"access_policy_type":          "accessPolicyType",
				"access_policy_number":        "accessPolicyNumber",
				"sticky_mac_allow_list":       "stickyMacAllowList",
				"sticky_mac_allow_list_limit": "stickyMacAllowListLimit",
				"storm_control_enabled":       "stormControlEnabled",
				"adaptive_policy_group_id":    "adaptivePolicyGroupId",
				"peer_sgt_capable":            "peerSgtCapable",
				"flexible_stacking_enabled":   "flexibleStackingEnabled",
				"dai_trusted":                 "daiTrusted",
				"profile":                     "profile",
			},
			Operations: map[OpKind]Operation{
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/devices/{serial}/switch/ports/{portId}",
					PathParams: []string{"serial", "portId"},
				},
				OpFindAll: {
					Method:     http.MethodGet,
					Path:       "/devices/{serial}/switch/ports",
					PathParams: []string{"serial"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/devices/{serial}/switch/ports/{portId}",
					PathParams: []string{"serial", "portId"},
					Fields: []string{
						"name", "tags", "enabled", "type", "vlan", "voiceVlan", "allowedVlans", "poeEnabled",
						"isolationEnabled", "rstpEnabled", "stpGuard", "linkNegotiation", "portScheduleId", "udld",
						"accessPolicyType", "accessPolicyNumber", "stickyMacAllowList", "stickyMacAllowListLimit",
						"stormControlEnabled", "adaptivePolicyGroupId", "peerSgtCapable", "flexibleStackingEnabled",
						"daiTrusted", "profile",
					},
				},
			},
		},
		{
			Name:        "switch_qos_rule",
			Module:      "meraki_switch_qos_rules",
			Description: "switch QoS rule",
			Shape:       Collection,
			ScopeParam:  ScopeNetwork,
			SystemKey:   "qos_rule_id",
			Aliases: map[string][]string{
				"networkId": {"network_id"},
				"qosRuleId": {"qos_rule_id", "id"},
			},
			FieldMap: map[string]string{
				"qos_rule_id":    "id",
				"dscp":           "dscp",
				"vlan":           "vlan",
				"protocol":       "protocol",
				"src_port":       "srcPort",
				"dst_port":       "dstPort",
				"src_port_range": "srcPortRange",
				"dst_port_range": "dstPortRange",
			},
			Operations: map[OpKind]Operation{
				OpCreate: {
					Method:     http.MethodPost,
					Path:       "/networks/{networkId}/switch/qosRules",
					PathParams: []string{"networkId"},
					Fields: []string{
						"dscp", "vlan", "protocol", "srcPort", "dstPort", "srcPortRange", "dstPortRange",
					},
				},
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/switch/qosRules/{qosRuleId}",
					PathParams: []string{"networkId", "qosRuleId"},
				},
				OpFindAll: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/switch/qosRules",
					PathParams: []string{"networkId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/networks/{networkId}/switch/qosRules/{qosRuleId}",
					PathParams: []string{"networkId", "qosRuleId"},
					Fields: []string{
						"dscp", "vlan", "protocol", "srcPort", "dstPort", "srcPortRange", "dstPortRange",
					},
				},
				OpDelete: {
					Method:     http.MethodDelete,
					Path:       "/networks/{networkId}/switch/qosRules/{qosRuleId}",
					PathParams: []string{"networkId", "qosRuleId"},
				},
			},
		},
		{
			Name:        "switch_settings",
			Module:      "meraki_switch_settings",
			Description: "switch settings",
			Shape:       Singleton,
			ScopeParam:  ScopeNetwork,
			Aliases: map[string][]string{
				"networkId": {"network_id"},
			},
			FieldMap: map[string]string{
				"default_mtu_size":          "defaultMtuSize",
				"overrides":                 "overrides",
				"broadcast_threshold":       "broadcastThreshold",
				"multicast_threshold":       "multicastThreshold",
				"unknown_unicast_threshold": "unknownUnicastThreshold",
				"mappings":                  "mappings",
				"use_combined_power":        "useCombinedPower",
				"power_exceptions":          "powerExceptions",
				"enabled":                   "enabled",
				"vlan_id":                   "vlanId",
				"switches":                  "switches",
				"protocols":                 "protocols",
			},
			Operations: map[OpKind]Operation{
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/switch/settings",
					PathParams: []string{"networkId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/networks/{networkId}/switch/settings",
					PathParams: []string{"networkId"},
					Fields: []string{
						"defaultMtuSize", "overrides", "broadcastThreshold", "multicastThreshold",
						"unknownUnicastThreshold", "mappings", "useCombinedPower", "powerExceptions", "enabled",
						"vlanId", "switches", "protocols",
					},
				},
			},
		},
		{
			Name:        "switch_stack",
			Module:      "meraki_switch_stacks",
			Description: "switch stack",
			Shape:       Collection,
			ScopeParam:  ScopeNetwork,
			SystemKey:   "switch_stack_id",
			Aliases: map[string][]string{
				"networkId":     {"network_id"},
				"switchStackId": {"switch_stack_id", "id"},
			},
			FieldMap: map[string]string{
				"switch_stack_id": "id",
				"name":            "name",
				"serials":         "serials",
				"members":         "members",
				"is_monitor_only": "isMonitorOnly",
				"virtual_mac":     "virtualMac",
			},
			Operations: map[OpKind]Operation{
				OpCreate: {
					Method:     http.MethodPost,
					Path:       "/networks/{networkId}/switch/stacks",
					PathParams: []string{"networkId"},
					Fields:     []string{"name", "serials"},
				},
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/switch/stacks/{switchStackId}",
					PathParams: []string{"networkId", "switchStackId"},
				},
				OpFindAll: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/switch/stacks",
					PathParams: []string{"networkId"},
				},
				OpDelete: {
					Method:     http.MethodDelete,
					Path:       "/networks/{networkId}/switch/stacks/{switchStackId}",
					PathParams: []string{"networkId", "switchStackId"},
				},
			},
		},
		{
			Name:        "switch_stp",
			Module:      "meraki_switch_stp",
			Description: "switch STP",
			Shape:       Singleton,
			ScopeParam:  ScopeNetwork,
			Aliases: map[string][]string{
				"networkId": {"network_id"},
			},
			FieldMap: map[string]string{
				"rstp_enabled":        "rstpEnabled",
				"stp_bridge_priority": "stpBridgePriority",
			},
			Operations: map[OpKind]Operation{
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/switch/stp",
					PathParams: []string{"networkId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/networks/{networkId}/switch/stp",
					PathParams: []string{"networkId"},
					Fields:     []string{"rstpEnabled", "stpBridgePriority"},
				},
			},
		},
	}
}
