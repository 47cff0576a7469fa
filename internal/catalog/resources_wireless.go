package catalog

import "net/http"

func wirelessResources() []Descriptor {
	return []Descriptor{
		{
			Name:        "air_marshal",
			Module:      "meraki_wireless_air_marshal_rules",
			Description: "wireless Air Marshal",
			Shape:       Collection,
			ScopeParam:  ScopeNetwork,
			SystemKey:   "rule_id",
			States:      []State{Merged, Replaced, Deleted},
			Aliases: map[string][]string{
				"networkId": {"network_id"},
				"ruleId":    {"rule_id"},
			},
			FieldMap: map[string]string{
				"rule_id":        "ruleId",
				"type":           "type",
				"match":          "match",
				"default_policy": "defaultPolicy",
				"ssid":           "ssid",
				"bssids":         "bssids",
				"channels":       "channels",
				"first_seen":     "firstSeen",
				"last_seen":      "lastSeen",
				"created_at":     "createdAt",
				"updated_at":     "updatedAt",
			},
			Operations: map[OpKind]Operation{
				OpCreate: {
					Method:     http.MethodPost,
					Path:       "/networks/{networkId}/wireless/airMarshal/rules",
					PathParams: []string{"networkId"},
					Fields:     []string{"type", "match", "defaultPolicy"},
				},
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/wireless/airMarshal/rules/{ruleId}",
					PathParams: []string{"networkId", "ruleId"},
				},
				OpFindAll: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/wireless/airMarshal/rules",
					PathParams: []string{"networkId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/networks/{networkId}/wireless/airMarshal/rules/{ruleId}",
					PathParams: []string{"networkId", "ruleId"},
					Fields:     []string{"type", "match", "defaultPolicy"},
				},
				OpDelete: {
					Method:     http.MethodDelete,
					Path:       "/networks/{networkId}/wireless/airMarshal/rules/{ruleId}",
					PathParams: []string{"networkId", "ruleId"},
				},
			},
		},
		{
			Name:        "ethernet_port_profile",
			Module:      "meraki_wireless_ethernet_port_profiles",
			Description: "wireless Ethernet port profile",
			Shape:       Collection,
			ScopeParam:  ScopeNetwork,
			SystemKey:   "profile_id",
			Aliases: map[string][]string{
				"networkId": {"network_id"},
				"profileId": {"profile_id"},
			},
			FieldMap: map[string]string{
				"profile_id": "profileId",
				"name":       "name",
				"ports":      "ports",
				"usb_ports":  "usbPorts",
				"is_default": "isDefault",
				"serials":    "serials",
			},
			Operations: map[OpKind]Operation{
				OpCreate: {
					Method:     http.MethodPost,
					Path:       "/networks/{networkId}/wireless/ethernet/ports/profiles",
					PathParams: []string{"networkId"},
					Fields:     []string{"name", "ports", "usbPorts"},
				},
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/wireless/ethernet/ports/profiles/{profileId}",
					PathParams: []string{"networkId", "profileId"},
				},
				OpFindAll: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/wireless/ethernet/ports/profiles",
					PathParams: []string{"networkId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/networks/{networkId}/wireless/ethernet/ports/profiles/{profileId}",
					PathParams: []string{"networkId", "profileId"},
					Fields:     []string{"name", "ports", "usbPorts", "isDefault"},
				},
				OpDelete: {
					Method:     http.MethodDelete,
					Path:       "/networks/{networkId}/wireless/ethernet/ports/profiles/{profileId}",
					PathParams: []string{"networkId", "profileId"},
				},
			},
		},
		{
			Name:        "ssid",
			Module:      "meraki_wireless_ssid",
			Description: "wireless SSID",
			Shape:       FixedPopulation,
			ScopeParam:  ScopeNetwork,
			SystemKey:   "number",
			Aliases: map[string][]string{
				"networkId": {"network_id"},
				"number":    {"number"},
			},
			FieldMap: map[string]string{
				"number":                          "number",
				"name":                            "name",
				"enabled":                         "enabled",
				"auth_mode":                       "authMode",
				"encryption_mode":                 "encryptionMode",
				"psk":                             "psk",
				"wpa_encryption_mode":             "wpaEncryptionMode",
				"ip_assignment_mode":              "ipAssignmentMode",
				"use_vlan_tagging":                "useVlanTagging",
				"default_vlan_id":                 "defaultVlanId",
				"vlan_id":                         "vlanId",
				"splash_page":                     "splashPage",
				"band_selection":                  "bandSelection",
				"min_bitrate":                     "minBitrate",
				"per_client_bandwidth_limit_up":   "perClientBandwidthLimitUp",
				"per_client_bandwidth_limit_down": "perClientBandwidthLimitDown",
				"per_ssid_bandwidth_limit_up":     "perSsidBandwidthLimitUp",
				"per_ssid_bandwidth_limit_down":   "perSsidBandwidthLimitDown",
				"visible":                         "visible",
				"available_on_all_aps":            "availableOnAllAps",
				"availability_tags":               "availabilityTags",
			},
			Operations: map[OpKind]Operation{
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/wireless/ssids/{number}",
					PathParams: []string{"networkId", "number"},
				},
				OpFindAll: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/wireless/ssids",
					PathParams: []string{"networkId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/networks/{networkId}/wireless/ssids/{number}",
					PathParams: []string{"networkId", "number"},
					Fields: []string{
						"name", "enabled", "authMode", "encryptionMode", "psk", "wpaEncryptionMode",
						"ipAssignmentMode", "useVlanTagging", "defaultVlanId", "vlanId", "splashPage",
						"bandSelection", "minBitrate", "perClientBandwidthLimitUp", "perClientBandwidthLimitDown",
						"perSsidBandwidthLimitUp", "perSsidBandwidthLimitDown", "visible", "availableOnAllAps",
						"availabilityTags",
					},
				},
			},
		},
		{
			Name:         "wireless_rf_profile",
			Module:       "meraki_wireless_rf_profiles",
			Description:  "wireless RF profile",
			Shape:        Collection,
			ScopeParam:   ScopeNetwork,
			CanonicalKey: "name",
			SystemKey:    "rf_profile_id",
			Aliases: map[string][]string{
				"networkId":   {"network_id"},
				"rfProfileId": {"rf_profile_id", "id"},
			},
			FieldMap: map[string]string{
				"rf_profile_id":            "id",
				"name":                     "name",
				"band_selection_type":      "bandSelectionType",
				"client_balancing_enabled": "clientBalancingEnabled",
				"two_four_ghz_settings":    "twoFourGhzSettings",
				"five_ghz_settings":        "fiveGhzSettings",
				"six_ghz_settings":         "sixGhzSettings",
				"transmission":             "transmission",
				"is_indoor_default":        "isIndoorDefault",
				"is_outdoor_default":       "isOutdoorDefault",
				"ap_band_settings":         "apBandSettings",
				"per_ssid_settings":        "perSsidSettings",
				"min_bitrate_type":         "minBitrateType",
			},
			Operations: map[OpKind]Operation{
				OpCreate: {
					Method:     http.MethodPost,
					Path:       "/networks/{networkId}/wireless/rfProfiles",
					PathParams: []string{"networkId"},
					Fields: []string{
						"name", "bandSelectionType", "clientBalancingEnabled", "twoFourGhzSettings",
						"fiveGhzSettings", "sixGhzSettings", "transmission", "apBandSettings", "perSsidSettings",
						"minBitrateType", "flexRadios",
					},
				},
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/wireless/rfProfiles/{rfProfileId}",
					PathParams: []string{"networkId", "rfProfileId"},
				},
				OpFindAll: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/wireless/rfProfiles",
					PathParams: []string{"networkId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/networks/{networkId}/wireless/rfProfiles/{rfProfileId}",
					PathParams: []string{"networkId", "rfProfileId"},
					Fields: []string{
						"name", "bandSelectionType", "clientBalancingEnabled", "twoFourGhzSettings",
						"fiveGhzSettings", "sixGhzSettings", "transmission", "apBandSettings", "perSsidSettings",
						"minBitrateType", "flexRadios", "isIndoorDefault", "isOutdoorDefault",
					},
				},
				OpDelete: {
					Method:     http.MethodDelete,
					Path:       "/networks/{networkId}/wireless/rfProfiles/{rfProfileId}",
					PathParams: []string{"networkId", "rfProfileId"},
				},
			},
		},
	}
}
