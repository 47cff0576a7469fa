package catalog

import "net/http"

func networksResources() []Descriptor {
	return []Descriptor{
		{
			Name:        "firmware_upgrade",
			Module:      "meraki_firmware_upgrade",
			Description: "firmware upgrade",
			Shape:       Singleton,
			ScopeParam:  ScopeNetwork,
			Aliases: map[string][]string{
				"networkId": {"network_id"},
			},
			FieldMap: map[string]string{
				"upgrade_window": "upgradeWindow",
				"timezone":       "timezone",
				"products":       "products",
			},
			Operations: map[OpKind]Operation{
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/firmwareUpgrades",
					PathParams: []string{"networkId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/networks/{networkId}/firmwareUpgrades",
					PathParams: []string{"networkId"},
					Fields:     []string{"upgradeWindow", "timezone", "products"},
				},
			},
		},
		{
			Name:         "floor_plan",
			Module:       "meraki_floor_plans",
			Description:  "floor plan",
			Shape:        Collection,
			ScopeParam:   ScopeNetwork,
			CanonicalKey: "name",
			SystemKey:    "floor_plan_id",
			Aliases: map[string][]string{
				"floorPlanId": {"floor_plan_id", "id"},
				"networkId":   {"network_id"},
			},
			FieldMap: map[string]string{
				"floor_plan_id":       "floorPlanId",
				"name":                "name",
				"center":              "center",
				"bottom_left_corner":  "bottomLeftCorner",
				"bottom_right_corner": "bottomRightCorner",
				"top_left_corner":     "topLeftCorner",
				"top_right_corner":    "topRightCorner",
				"width":               "width",
				"height":              "height",
				"floor_number":        "floorNumber",
				"image_contents":      "imageContents",
				"image_extension":     "imageExtension",
			},
			Operations: map[OpKind]Operation{
				OpCreate: {
					Method:     http.MethodPost,
					Path:       "/networks/{networkId}/floorPlans",
					PathParams: []string{"networkId"},
					Fields: []string{
						"name", "center", "bottomLeftCorner", "bottomRightCorner", "topLeftCorner", "topRightCorner",
						"width", "height", "floorNumber", "imageContents", "imageExtension",
					},
				},
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/floorPlans/{floorPlanId}",
					PathParams: []string{"networkId", "floorPlanId"},
				},
				OpFindAll: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/floorPlans",
					PathParams: []string{"networkId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/networks/{networkId}/floorPlans/{floorPlanId}",
					PathParams: []string{"networkId", "floorPlanId"},
					Fields: []string{
						"name", "center", "bottomLeftCorner", "bottomRightCorner", "topLeftCorner", "topRightCorner",
						"width", "height", "floorNumber", "imageContents", "imageExtension",
					},
				},
				OpDelete: {
					Method:     http.MethodDelete,
					Path:       "/networks/{networkId}/floorPlans/{floorPlanId}",
					PathParams: []string{"networkId", "floorPlanId"},
				},
			},
		},
		{
			Name:        "group_policy",
			Module:      "meraki_group_policies",
			Description: "group policy",
			Shape:       Collection,
			ScopeParam:  ScopeNetwork,
			SystemKey:   "group_policy_id",
			Aliases: map[string][]string{
				"groupPolicyId": {"group_policy_id", "id"},
				"networkId":     {"network_id"},
			},
			FieldMap: map[string]string{
				"group_policy_id":              "groupPolicyId",
				"name":                         "name",
				"bandwidth":                    "bandwidth",
				"bonjour_forwarding":           "bonjourForwarding",
				"content_filtering":            "contentFiltering",
				"firewall_and_traffic_shaping": "firewallAndTrafficShaping",
				"scheduling":                   "scheduling",
				"splash_auth_settings":         "splashAuthSettings",
				"vlan_tagging":                 "vlanTagging",
			},
			Operations: map[OpKind]Operation{
				OpCreate: {
					Method:     http.MethodPost,
					Path:       "/networks/{networkId}/groupPolicies",
					PathParams: []string{"networkId"},
					Fields: []string{
						"name", "bandwidth", "bonjourForwarding", "contentFiltering", "firewallAndTrafficShaping",
						"scheduling", "splashAuthSettings", "vlanTagging",
					},
				},
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/groupPolicies/{groupPolicyId}",
					PathParams: []string{"networkId", "groupPolicyId"},
				},
				OpFindAll: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/groupPolicies",
					PathParams: []string{"networkId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/networks/{networkId}/groupPolicies/{groupPolicyId}",
					PathParams: []string{"networkId", "groupPolicyId"},
					Fields: []string{
						"name", "bandwidth", "bonjourForwarding", "contentFiltering", "firewallAndTrafficShaping",
						"scheduling", "splashAuthSettings", "vlanTagging",
					},
				},
				OpDelete: {
					Method:     http.MethodDelete,
					Path:       "/networks/{networkId}/groupPolicies/{groupPolicyId}",
					PathParams: []string{"networkId", "groupPolicyId"},
				},
			},
		},
		{
			Name:         "meraki_auth_user",
			Module:       "meraki_auth_users",
			Description:  "auth user",
			Shape:        Collection,
			ScopeParam:   ScopeNetwork,
			CanonicalKey: "email",
			SystemKey:    "meraki_auth_user_id",
			Aliases: map[string][]string{
				"merakiAuthUserId": {"meraki_auth_user_id", "id"},
				"networkId":        {"network_id"},
			},
			FieldMap: map[string]string{
				"meraki_auth_user_id":    "id",
				"name":                   "name",
				"email":                  "email",
				"password":               "password",
				"account_type":           "accountType",
				"authorizations":         "authorizations",
				"is_admin":               "isAdmin",
				"email_password_to_user": "emailPasswordToUser",
			},
			Operations: map[OpKind]Operation{
				OpCreate: {
					Method:     http.MethodPost,
					Path:       "/networks/{networkId}/merakiAuthUsers",
					PathParams: []string{"networkId"},
					Fields: []string{
						"name", "email", "password", "accountType", "authorizations", "isAdmin",
						"emailPasswordToUser",
					},
				},
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/merakiAuthUsers/{merakiAuthUserId}",
					PathParams: []string{"networkId", "merakiAuthUserId"},
				},
				OpFindAll: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/merakiAuthUsers",
					PathParams: []string{"networkId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/networks/{networkId}/merakiAuthUsers/{merakiAuthUserId}",
					PathParams: []string{"networkId", "merakiAuthUserId"},
					Fields: []string{
						"name", "email", "password", "accountType", "authorizations", "isAdmin",
						"emailPasswordToUser",
					},
				},
				OpDelete: {
					Method:     http.MethodDelete,
					Path:       "/networks/{networkId}/merakiAuthUsers/{merakiAuthUserId}",
					PathParams: []string{"networkId", "merakiAuthUserId"},
				},
			},
		},
		{
			Name:        "mqtt_broker",
			Module:      "meraki_mqtt_brokers",
			Description: "MQTT broker",
			Shape:       Collection,
			ScopeParam:  ScopeNetwork,
			SystemKey:   "mqtt_broker_id",
			Aliases: map[string][]string{
				"mqttBrokerId": {"mqtt_broker_id", "id"},
				"networkId":    {"network_id"},
			},
			FieldMap: map[string]string{
				"mqtt_broker_id": "id",
				"name":           "name",
				"host":           "host",
				"port":           "port",
				"authentication": "authentication",
				"security":       "security",
			},
			Operations: map[OpKind]Operation{
				OpCreate: {
					Method:     http.MethodPost,
					Path:       "/networks/{networkId}/mqttBrokers",
					PathParams: []string{"networkId"},
					Fields:     []string{"name", "host", "port", "authentication", "security"},
				},
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/mqttBrokers/{mqttBrokerId}",
					PathParams: []string{"networkId", "mqttBrokerId"},
				},
				OpFindAll: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/mqttBrokers",
					PathParams: []string{"networkId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/networks/{networkId}/mqttBrokers/{mqttBrokerId}",
					PathParams: []string{"networkId", "mqttBrokerId"},
					Fields:     []string{"name", "host", "port", "authentication", "security"},
				},
				OpDelete: {
					Method:     http.MethodDelete,
					Path:       "/networks/{networkId}/mqttBrokers/{mqttBrokerId}",
					PathParams: []string{"networkId", "mqttBrokerId"},
				},
			},
		},
		{
			Name:        "network_settings",
			Module:      "meraki_network_settings",
			Description: "network settings",
			Shape:       Singleton,
			ScopeParam:  ScopeNetwork,
			Aliases: map[string][]string{
				"networkId": {"network_id"},
			},
			FieldMap: map[string]string{
				"local_status_page_enabled":  "localStatusPageEnabled",
				"remote_status_page_enabled": "remoteStatusPageEnabled",
				"local_status_page":          "localStatusPage",
				"fips":                       "fips",
				"named_vlans":                "namedVlans",
				"secure_port":                "securePort",
				"reporting_enabled":          "reportingEnabled",
				"mode":                       "mode",
				"custom_pie_chart_items":     "customPieChartItems",
			},
			Operations: map[OpKind]Operation{
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/settings",
					PathParams: []string{"networkId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/networks/{networkId}/settings",
					PathParams: []string{"networkId"},
					Fields: []string{
						"localStatusPageEnabled", "remoteStatusPageEnabled", "localStatusPage", "fips", "namedVlans",
						"securePort", "reportingEnabled", "mode", "customPieChartItems",
					},
				},
			},
		},
		{
			Name:         "vlan_profile",
			Module:       "meraki_vlan_profiles",
			Description:  "VLAN profile",
			Shape:        Collection,
			ScopeParam:   ScopeNetwork,
			CanonicalKey: "iname",
			Aliases: map[string][]string{
				"iname":     {"iname"},
				"networkId": {"network_id"},
			},
			FieldMap: map[string]string{
				"iname":        "iname",
				"name":         "name",
				"is_default":   "isDefault",
				"vlan_names":   "vlanNames",
				"vlan_groups":  "vlanGroups",
				"vlan_profile": "vlanProfile",
			},
			Operations: map[OpKind]Operation{
				OpCreate: {
					Method:     http.MethodPost,
					Path:       "/networks/{networkId}/vlanProfiles",
					PathParams: []string{"networkId"},
					Fields:     []string{"iname", "name", "isDefault", "vlanNames", "vlanGroups", "vlanProfile"},
				},
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/vlanProfiles/{iname}",
					PathParams: []string{"networkId", "iname"},
				},
				OpFindAll: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/vlanProfiles",
					PathParams: []string{"networkId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/networks/{networkId}/vlanProfiles/{iname}",
					PathParams: []string{"networkId", "iname"},
					Fields:     []string{"name", "isDefault", "vlanNames", "vlanGroups", "vlanProfile"},
				},
				OpDelete: {
					Method:     http.MethodDelete,
					Path:       "/networks/{networkId}/vlanProfiles/{iname}",
					PathParams: []string{"networkId", "iname"},
				},
			},
		},
		{
			Name:         "webhook",
			Module:       "meraki_webhooks",
			Description:  "webhook HTTP server",
			Shape:        Collection,
			ScopeParam:   ScopeNetwork,
			CanonicalKey: "name",
			SystemKey:    "http_server_id",
			Aliases: map[string][]string{
				"httpServerId": {"http_server_id", "id"},
				"networkId":    {"network_id"},
			},
			FieldMap: map[string]string{
				"http_server_id":   "id",
				"name":             "name",
				"url":              "url",
				"shared_secret":    "sharedSecret",
				"payload_template": "payloadTemplate",
			},
			Operations: map[OpKind]Operation{
				OpCreate: {
					Method:     http.MethodPost,
					Path:       "/networks/{networkId}/webhooks/httpServers",
					PathParams: []string{"networkId"},
					Fields:     []string{"name", "url", "sharedSecret", "payloadTemplate"},
				},
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/webhooks/httpServers/{httpServerId}",
					PathParams: []string{"networkId", "httpServerId"},
				},
				OpFindAll: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/webhooks/httpServers",
					PathParams: []string{"networkId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/networks/{networkId}/webhooks/httpServers/{httpServerId}",
					PathParams: []string{"networkId", "httpServerId"},
					Fields:     []string{"name", "url", "sharedSecret", "payloadTemplate"},
				},
				OpDelete: {
					Method:     http.MethodDelete,
					Path:       "/networks/{networkId}/webhooks/httpServers/{httpServerId}",
					PathParams: []string{"networkId", "httpServerId"},
				},
			},
		},
	}
}
