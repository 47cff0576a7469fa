package catalog

import "net/http"

func cameraResources() []Descriptor {
	return []Descriptor{
		{
			Name:        "camera_quality_retention_profile",
			Module:      "meraki_camera_quality_retention_profiles",
			Description: "camera quality retention profile",
			Shape:       Collection,
			ScopeParam:  ScopeNetwork,
			SystemKey:   "quality_retention_profile_id",
			Aliases: map[string][]string{
				"networkId":                 {"network_id"},
				"qualityRetentionProfileId": {"quality_retention_profile_id", "id"},
			},
			FieldMap: map[string]string{
				"quality_retention_profile_id":      "id",
				"name":                              "name",
				"max_retention_days":                "maxRetentionDays",
				"motion_based_retention_enabled":    "motionBasedRetentionEnabled",
				"restricted_bandwidth_mode_enabled": "restrictedBandwidthModeEnabled",
				"audio_recording_enabled":           "audioRecordingEnabled",
				"cloud_archive_enabled":             "cloudArchiveEnabled",
				"schedule_id":                       "scheduleId",
				"video_settings":                    "videoSettings",
				"smart_retention":                   "smartRetention",
			},
			Operations: map[OpKind]Operation{
				OpCreate: {
					Method:     http.MethodPost,
					Path:       "/networks/{networkId}/camera/qualityRetentionProfiles",
					PathParams: []string{"networkId"},
					Fields: []string{
						"name", "maxRetentionDays", "motionBasedRetentionEnabled", "restrictedBandwidthModeEnabled",
						"audioRecordingEnabled", "cloudArchiveEnabled", "scheduleId", "videoSettings",
						"smartRetention",
					},
				},
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/camera/qualityRetentionProfiles/{qualityRetentionProfileId}",
					PathParams: []string{"networkId", "qualityRetentionProfileId"},
				},
				OpFindAll: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/camera/qualityRetentionProfiles",
					PathParams: []string{"networkId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/networks/{networkId}/camera/qualityRetentionProfiles/{qualityRetentionProfileId}",
					PathParams: []string{"networkId", "qualityRetentionProfileId"},
					Fields: []string{
						"name", "maxRetentionDays", "motionBasedRetentionEnabled", "restrictedBandwidthModeEnabled",
						"audioRecordingEnabled", "cloudArchiveEnabled", "scheduleId", "videoSettings",
						"smartRetention",
					},
				},
				OpDelete: {
					Method:     http.MethodDelete,
					Path:       "/networks/{networkId}/camera/qualityRetentionProfiles/{qualityRetentionProfileId}",
					PathParams: []string{"networkId", "qualityRetentionProfileId"},
				},
			},
		},
		{
			Name:         "camera_wireless_profile",
			Module:       "meraki_camera_wireless_profiles",
			Description:  "camera wireless profile",
			Shape:        Collection,
			ScopeParam:   ScopeNetwork,
			CanonicalKey: "name",
			SystemKey:    "wireless_profile_id",
			Aliases: map[string][]string{
				"networkId":         {"network_id"},
				"wirelessProfileId": {"wireless_profile_id", "id"},
			},
			FieldMap: map[string]string{
				"wireless_profile_id": "id",
				"name":                "name",
				"identity":            "identity",
				"ssid":                "ssid",
			},
			Operations: map[OpKind]Operation{
				OpCreate: {
					Method:     http.MethodPost,
					Path:       "/networks/{networkId}/camera/wirelessProfiles",
					PathParams: []string{"networkId"},
					Fields:     []string{"id", "name", "identity", "ssid"},
				},
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/camera/wirelessProfiles/{wirelessProfileId}",
					PathParams: []string{"networkId", "wirelessProfileId"},
				},
				OpFindAll: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/camera/wirelessProfiles",
					PathParams: []string{"networkId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/networks/{networkId}/camera/wirelessProfiles/{wirelessProfileId}",
					PathParams: []string{"networkId", "wirelessProfileId"},
					Fields:     []string{"name", "identity", "ssid"},
				},
				OpDelete: {
					Method:     http.MethodDelete,
					Path:       "/networks/{networkId}/camera/wirelessProfiles/{wirelessProfileId}",
					PathParams: []string{"networkId", "wirelessProfileId"},
				},
			},
		},
	}
}
