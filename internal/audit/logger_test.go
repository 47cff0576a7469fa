package audit

import (
	"bytes"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLoggerComplete_EmitsOneStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	auditLogger := NewLogger(zerolog.New(&buf))

	auditLogger.Complete(Completion{
		RequestID:  "req-1",
		Transport:  "mcp-http",
		Mode:       "read-write",
		CallerSub:  "agent",
		Resource:   "ssid",
		State:      "merged",
		Scope:      "N_1",
		Changed:    true,
		Operations: map[string]int{"update": 2},
		Outcome:    "completed",
		Config: []map[string]any{
			{"number": 3, "name": "Corp", "psk": "hunter22"},
			{"number": 4, "psk": "hunter22"},
		},
		Duration:   120 * time.Millisecond,
		StatusCode: 200,
	})

	lines := splitJSONLines(t, buf.String())
	require.Len(t, lines, 1)

	entry := lines[0]
	require.Equal(t, "reconcile.complete", entry["event"])
	require.Equal(t, "audit", entry["component"])
	require.Equal(t, "req-1", entry["request_id"])
	require.Equal(t, "mcp-http", entry["transport"])
	require.Equal(t, "ssid", entry["resource"])
	require.Equal(t, "merged", entry["state"])
	require.Equal(t, "N_1", entry["scope"])
	require.Equal(t, false, entry["check_mode"])
	require.Equal(t, true, entry["changed"])
	require.Equal(t, "completed", entry["outcome"])
	require.EqualValues(t, 120, entry["duration_ms"])
	require.EqualValues(t, 200, entry["status_code"])
	require.Equal(t, map[string]any{"create": float64(0), "update": float64(2), "delete": float64(0)}, entry["operations"])
	require.Equal(t, []any{"3", "4"}, entry["targets"])
	require.NotContains(t, buf.String(), "hunter22")
}

func TestLoggerComplete_Defaults(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(zerolog.New(&buf)).Complete(Completion{
		ErrorKind:   "TransportError",
		ErrorDetail: "POST failed: X-Cisco-Meraki-API-Key: abc123",
		Duration:    -time.Second,
	})

	entry := splitJSONLines(t, buf.String())[0]
	require.Equal(t, "unknown", entry["resource"])
	require.Equal(t, "failed", entry["outcome"])
	require.Equal(t, "read-only", entry["mode"])
	require.EqualValues(t, 0, entry["duration_ms"])
	require.Equal(t, "TransportError", entry["error_kind"])
	require.NotContains(t, entry["error_detail"], "abc123")
}

func TestNilLoggerIsNoop(t *testing.T) {
	var l *Logger
	require.NotPanics(t, func() { l.Complete(Completion{}) })
}

func TestRedactSensitiveText_RedactsTokenLikeSegments(t *testing.T) {
	raw := "request failed: Authorization: Bearer abc.def.ghi token=xyz123 password=hunter2 psk=wifi-secret"
	out := RedactSensitiveText(raw)

	require.NotContains(t, out, "abc.def.ghi")
	require.NotContains(t, out, "xyz123")
	require.NotContains(t, out, "hunter2")
	require.NotContains(t, out, "wifi-secret")
	require.Contains(t, out, "Authorization: [REDACTED]")
	require.Contains(t, out, "token=[REDACTED]")
	require.Contains(t, out, "psk=[REDACTED]")
	require.Empty(t, RedactSensitiveText("   "))
}

func TestRedactConfig(t *testing.T) {
	in := []map[string]any{{
		"name": "Corp",
		"psk":  "secret-psk",
		"radius_servers": []any{
			map[string]any{"host": "10.0.0.1", "secret": "radius"},
		},
		"nested":   map[string]any{"shared_secret": "s", "keep": 1},
		"password": nil,
	}}

	out := RedactConfig(in)
	require.Equal(t, "Corp", out[0]["name"])
	require.Equal(t, "[REDACTED]", out[0]["psk"])
	require.Nil(t, out[0]["password"])
	server := out[0]["radius_servers"].([]any)[0].(map[string]any)
	require.Equal(t, "10.0.0.1", server["host"])
	require.Equal(t, "[REDACTED]", server["secret"])
	nested := out[0]["nested"].(map[string]any)
	require.Equal(t, "[REDACTED]", nested["shared_secret"])
	require.Equal(t, 1, nested["keep"])

	require.Equal(t, "secret-psk", in[0]["psk"])
	require.Nil(t, RedactConfig(nil))
}

func TestSummarizeTargets_CollectsIdentifiers(t *testing.T) {
	summary := SummarizeTargets([]map[string]any{
		{"vlan_id": "20", "name": "voice"},
		{"vlan_id": "10"},
		{"name": "voice"},
		{"subnet": "10.0.0.0/24"},
	})
	require.Equal(t, []string{"10", "20", "voice"}, summary)
	require.Nil(t, SummarizeTargets(nil))
}

func splitJSONLines(t *testing.T, payload string) []map[string]any {
	t.Helper()

	rawLines := bytes.Split(bytes.TrimSpace([]byte(payload)), []byte("\n"))
	lines := make([]map[string]any, 0, len(rawLines))
	for _, raw := range rawLines {
		if len(bytes.TrimSpace(raw)) == 0 {
			continue
		}
		var item map[string]any
		require.NoError(t, json.Unmarshal(raw, &item))
		lines = append(lines, item)
	}
	return lines
}
