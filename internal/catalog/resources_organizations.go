package catalog

import "net/http"

func organizationsResources() []Descriptor {
	return []Descriptor{
		{
			Name:        "adaptive_policy",
			Module:      "meraki_organization_adaptive_policy",
			Description: "organization adaptive policy",
			Shape:       Singleton,
			ScopeParam:  ScopeOrganization,
			Aliases: map[string][]string{
				"organizationId": {"organization_id"},
			},
			FieldMap: map[string]string{
				"enabled_networks": "enabledNetworks",
				"last_entry_rule":  "lastEntryRule",
			},
			Operations: map[OpKind]Operation{
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/organizations/{organizationId}/adaptivePolicy/settings",
					PathParams: []string{"organizationId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/organizations/{organizationId}/adaptivePolicy/settings",
					PathParams: []string{"organizationId"},
					Fields:     []string{"enabledNetworks", "lastEntryRule"},
				},
			},
		},
		{
			Name:        "admin",
			Module:      "meraki_organization_admins",
			Description: "organization admin",
			Shape:       Collection,
			ScopeParam:  ScopeOrganization,
			SystemKey:   "admin_id",
			Aliases: map[string][]string{
				"adminId":        {"admin_id", "id"},
				"organizationId": {"organization_id"},
			},
			FieldMap: map[string]string{
				"admin_id":                "id",
				"name":                    "name",
				"email":                   "email",
				"org_access":              "orgAccess",
				"tags":                    "tags",
				"networks":                "networks",
				"authentication_method":   "authenticationMethod",
				"account_status":          "accountStatus",
				"two_factor_auth_enabled": "twoFactorAuthEnabled",
				"has_api_key":             "hasApiKey",
				"last_active":             "lastActive",
			},
			Operations: map[OpKind]Operation{
				OpCreate: {
					Method:     http.MethodPost,
					Path:       "/organizations/{organizationId}/admins",
					PathParams: []string{"organizationId"},
					Fields:     []string{"email", "name", "orgAccess", "tags", "networks", "authenticationMethod"},
				},
				OpFindAll: {
					Method:     http.MethodGet,
					Path:       "/organizations/{organizationId}/admins",
					PathParams: []string{"organizationId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/organizations/{organizationId}/admins/{adminId}",
					PathParams: []string{"organizationId", "adminId"},
					Fields:     []string{"name", "orgAccess", "tags", "networks", "authenticationMethod"},
				},
				OpDelete: {
					Method:     http.MethodDelete,
					Path:       "/organizations/{organizationId}/admins/{adminId}",
					PathParams: []string{"organizationId", "adminId"},
				},
			},
		},
		{
			Name:         "branding_policy",
			Module:       "meraki_organization_branding_policies",
			Description:  "organization branding policy",
			Shape:        Collection,
			ScopeParam:   ScopeOrganization,
			CanonicalKey: "name",
			SystemKey:    "branding_policy_id",
			Aliases: map[string][]string{
				"brandingPolicyId": {"branding_policy_id", "id"},
				"organizationId":   {"organization_id"},
			},
			FieldMap: map[string]string{
				"branding_policy_id": "id",
				"name":               "name",
				"enabled":            "enabled",
				"admin_settings":     "adminSettings",
				"help_settings":      "helpSettings",
				"custom_logo":        "customLogo",
			},
			Operations: map[OpKind]Operation{
				OpCreate: {
					Method:     http.MethodPost,
					Path:       "/organizations/{organizationId}/brandingPolicies",
					PathParams: []string{"organizationId"},
					Fields:     []string{"name", "enabled", "adminSettings", "helpSettings", "customLogo"},
				},
				OpFindAll: {
					Method:     http.MethodGet,
					Path:       "/organizations/{organizationId}/brandingPolicies",
					PathParams: []string{"organizationId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/organizations/{organizationId}/brandingPolicies/{brandingPolicyId}",
					PathParams: []string{"organizationId", "brandingPolicyId"},
					Fields:     []string{"name", "enabled", "adminSettings", "helpSettings", "customLogo"},
				},
				OpDelete: {
					Method:     http.MethodDelete,
					Path:       "/organizations/{organizationId}/brandingPolicies/{brandingPolicyId}",
					PathParams: []string{"organizationId", "brandingPolicyId"},
				},
			},
		},
		{
			Name:         "config_template",
			Module:       "meraki_organization_config_templates",
			Description:  "organization config template",
			Shape:        Collection,
			ScopeParam:   ScopeOrganization,
			CanonicalKey: "name",
			SystemKey:    "config_template_id",
			Aliases: map[string][]string{
				"configTemplateId": {"config_template_id", "id"},
				"organizationId":   {"organization_id"},
			},
			FieldMap: map[string]string{
				"config_template_id":   "id",
				"name":                 "name",
				"product_types":        "productTypes",
				"time_zone":            "timeZone",
				"copy_from_network_id": "copyFromNetworkId",
			},
			Operations: map[OpKind]Operation{
				OpCreate: {
					Method:     http.MethodPost,
					Path:       "/organizations/{organizationId}/configTemplates",
					PathParams: []string{"organizationId"},
					Fields:     []string{"name", "productTypes", "timeZone", "copyFromNetworkId"},
				},
				OpFindAll: {
					Method:     http.MethodGet,
					Path:       "/organizations/{organizationId}/configTemplates",
					PathParams: []string{"organizationId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/organizations/{organizationId}/configTemplates/{configTemplateId}",
					PathParams: []string{"organizationId", "configTemplateId"},
					Fields:     []string{"name", "productTypes", "timeZone", "copyFromNetworkId"},
				},
				OpDelete: {
					Method:     http.MethodDelete,
					Path:       "/organizations/{organizationId}/configTemplates/{configTemplateId}",
					PathParams: []string{"organizationId", "configTemplateId"},
				},
			},
		},
		{
			Name:        "org_alert_profile",
			Module:      "meraki_organization_alert_profiles",
			Description: "organization alert profile",
			Shape:       Collection,
			ScopeParam:  ScopeOrganization,
			SystemKey:   "alert_config_id",
			Aliases: map[string][]string{
				"alertConfigId":  {"alert_config_id", "id"},
				"organizationId": {"organization_id"},
			},
			FieldMap: map[string]string{
				"alert_config_id": "id",
				"type":            "type",
				"enabled":         "enabled",
				"alert_condition": "alertCondition",
				"recipients":      "recipients",
				"network_tags":    "networkTags",
				"description":     "description",
			},
			Operations: map[OpKind]Operation{
				OpCreate: {
					Method:     http.MethodPost,
					Path:       "/organizations/{organizationId}/alerts/profiles",
					PathParams: []string{"organizationId"},
					Fields:     []string{"type", "enabled", "alertCondition", "recipients", "networkTags", "description"},
				},
				OpFindAll: {
					Method:     http.MethodGet,
					Path:       "/organizations/{organizationId}/alerts/profiles",
					PathParams: []string{"organizationId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/organizations/{organizationId}/alerts/profiles/{alertConfigId}",
					PathParams: []string{"organizationId", "alertConfigId"},
					Fields:     []string{"type", "enabled", "alertCondition", "recipients", "networkTags", "description"},
				},
				OpDelete: {
					Method:     http.MethodDelete,
					Path:       "/organizations/{organizationId}/alerts/profiles/{alertConfigId}",
					PathParams: []string{"organizationId", "alertConfigId"},
				},
			},
		},
		{
			Name:        "org_vpn",
			Module:      "meraki_organization_vpn",
			Description: "organization VPN",
			Shape:       Singleton,
			ScopeParam:  ScopeOrganization,
			Aliases: map[string][]string{
				"organizationId": {"organization_id"},
			},
			FieldMap: map[string]string{
				"peers":                 "peers",
				"third_party_vpn_peers": "thirdPartyVpnPeers",
			},
			Operations: map[OpKind]Operation{
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/organizations/{organizationId}/appliance/vpn/thirdPartyVPNPeers",
					PathParams: []string{"organizationId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/organizations/{organizationId}/appliance/vpn/thirdPartyVPNPeers",
					PathParams: []string{"organizationId"},
					Fields:     []string{"peers"},
				},
			},
		},
		{
			Name:         "policy_object",
			Module:       "meraki_organization_policy_objects",
			Description:  "organization policy object",
			Shape:        Collection,
			ScopeParam:   ScopeOrganization,
			CanonicalKey: "name",
			SystemKey:    "policy_object_id",
			Aliases: map[string][]string{
				"organizationId": {"organization_id"},
				"policyObjectId": {"policy_object_id", "id"},
			},
			FieldMap: map[string]string{
				"policy_object_id": "id",
				"name":             "name",
				"category":         "category",
				"type":             "type",
				"cidr":             "cidr",
				"fqdn":             "fqdn",
				"ip":               "ip",
				"mask":             "mask",
				"group_ids":        "groupIds",
				"network_ids":      "networkIds",
				"object_ids":       "objectIds",
			},
			Operations: map[OpKind]Operation{
				OpCreate: {
					Method:     http.MethodPost,
					Path:       "/organizations/{organizationId}/policyObjects",
					PathParams: []string{"organizationId"},
					Fields: []string{
						"name", "category", "type", "cidr", "fqdn", "ip", "mask", "groupIds", "networkIds",
						"objectIds",
					},
				},
				OpFindAll: {
					Method:     http.MethodGet,
					Path:       "/organizations/{organizationId}/policyObjects",
					PathParams: []string{"organizationId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/organizations/{organizationId}/policyObjects/{policyObjectId}",
					PathParams: []string{"organizationId", "policyObjectId"},
					Fields: []string{
						"name", "category", "type", "cidr", "fqdn", "ip", "mask", "groupIds", "networkIds",
						"objectIds",
					},
				},
				OpDelete: {
					Method:     http.MethodDelete,
					Path:       "/organizations/{organizationId}/policyObjects/{policyObjectId}",
					PathParams: []string{"organizationId", "policyObjectId"},
				},
			},
		},
		{
			Name:        "saml",
			Module:      "meraki_organization_saml",
			Description: "organization SAML",
			Shape:       Singleton,
			ScopeParam:  ScopeOrganization,
			Aliases: map[string][]string{
				"organizationId": {"organization_id"},
			},
			FieldMap: map[string]string{
				"enabled":                   "enabled",
				"consumer_url":              "consumerUrl",
				"slo_logout_url":            "sloLogoutUrl",
				"sso_login_url":             "ssoLoginUrl",
				"x509cert_sha1_fingerprint": "x509certSha1Fingerprint",
				"vision_consumer_url":       "visionConsumerUrl",
				"sp_initiated":              "spInitiated",
			},
			Operations: map[OpKind]Operation{
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/organizations/{organizationId}/saml",
					PathParams: []string{"organizationId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/organizations/{organizationId}/saml",
					PathParams: []string{"organizationId"},
					Fields: []string{
						"enabled", "consumerUrl", "sloLogoutUrl", "ssoLoginUrl", "x509certSha1Fingerprint",
						"visionConsumerUrl", "spInitiated",
					},
				},
			},
		},
	}
}
