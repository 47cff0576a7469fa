package catalog

import "net/http"

func sensorResources() []Descriptor {
	return []Descriptor{
		{
			Name:         "sensor_alert_profile",
			Module:       "meraki_sensor_alert_profiles",
			Description:  "sensor alert profile",
			Shape:        Collection,
			ScopeParam:   ScopeNetwork,
			CanonicalKey: "name",
			SystemKey:    "id",
			Aliases: map[string][]string{
				"id":        {"id", "profile_id"},
				"networkId": {"network_id"},
			},
			FieldMap: map[string]string{
				"id":                 "profileId",
				"name":               "name",
				"conditions":         "conditions",
				"schedule":           "schedule",
				"recipients":         "recipients",
				"message":            "message",
				"include_sensor_url": "includeSensorUrl",
				"serials":            "serials",
			},
			Operations: map[OpKind]Operation{
				OpCreate: {
					Method:     http.MethodPost,
					Path:       "/networks/{networkId}/sensor/alerts/profiles",
					PathParams: []string{"networkId"},
					Fields: []string{
						"name", "conditions", "schedule", "recipients", "message", "includeSensorUrl", "serials",
					},
				},
				OpFind: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/sensor/alerts/profiles/{id}",
					PathParams: []string{"networkId", "id"},
				},
				OpFindAll: {
					Method:     http.MethodGet,
					Path:       "/networks/{networkId}/sensor/alerts/profiles",
					PathParams: []string{"networkId"},
				},
				OpUpdate: {
					Method:     http.MethodPut,
					Path:       "/networks/{networkId}/sensor/alerts/profiles/{id}",
					PathParams: []string{"networkId", "id"},
					Fields: []string{
						"name", "conditions", "schedule", "recipients", "message", "includeSensorUrl", "serials",
					},
				},
				OpDelete: {
					Method:     http.MethodDelete,
					Path:       "/networks/{networkId}/sensor/alerts/profiles/{id}",
					PathParams: []string{"networkId", "id"},
				},
			},
		},
	}
}
