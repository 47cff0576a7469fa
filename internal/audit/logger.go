// Package audit provides structured audit logging for reconcile runs.
package audit

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const redacted = "[REDACTED]"

var (
	bearerTokenPattern = regexp.MustCompile(`(?i)\bBearer\s+[A-Za-z0-9\-._~+/]+=*`)
	keyValuePattern    = regexp.MustCompile(`(?i)\b(token|secret|password|passphrase|psk|authorization|x-cisco-meraki-api-key|api[_-]?key)\s*[:=]\s*([^\s,;]+)`)
	sensitiveFields    = regexp.MustCompile(`(?i)(psk|password|passphrase|secret|shared_?secret|api_?key|token)$`)
)

// Completion captures one finalized reconcile outcome.
type Completion struct {
	RequestID string
	Transport string
	Mode      string
	CallerSub string

	Resource   string
	State      string
	Scope      string
	CheckMode  bool
	Changed    bool
	Operations map[string]int
	Outcome    string
	// Config is the submitted configuration, summarized and never logged verbatim.
	Config      []map[string]any
	ErrorKind   string
	ErrorDetail string
	Duration    time.Duration
	StatusCode  int
}

// Logger emits structured audit entries.
type Logger struct {
	logger zerolog.Logger
}

// NewLogger creates an audit logger.
func NewLogger(logger zerolog.Logger) *Logger {
	return &Logger{
		logger: logger.With().Str("component", "audit").Logger(),
	}
}

// Complete writes a single completion log entry for one reconcile.
func (l *Logger) Complete(event Completion) {
	if l == nil {
		return
	}

	outcome := strings.TrimSpace(event.Outcome)
	if outcome == "" {
		outcome = "failed"
	}
	resource := strings.TrimSpace(event.Resource)
	if resource == "" {
		resource = "unknown"
	}
	mode := strings.TrimSpace(event.Mode)
	if mode == "" {
		mode = "read-only"
	}
	duration := event.Duration
	if duration < 0 {
		duration = 0
	}

	entry := l.logger.Info().
		Str("event", "reconcile.complete").
		Str("request_id", strings.TrimSpace(event.RequestID)).
		Str("transport", strings.TrimSpace(event.Transport)).
		Str("mode", mode).
		Str("caller_subject", strings.TrimSpace(event.CallerSub)).
		Str("resource", resource).
		Str("state", strings.TrimSpace(event.State)).
		Str("scope", strings.TrimSpace(event.Scope)).
		Bool("check_mode", event.CheckMode).
		Bool("changed", event.Changed).
		Interface("operations", operationCounts(event.Operations)).
		Strs("targets", SummarizeTargets(event.Config)).
		Str("outcome", outcome).
		Int64("duration_ms", duration.Milliseconds())

	if event.StatusCode > 0 {
		entry = entry.Int("status_code", event.StatusCode)
	}
	if kind := strings.TrimSpace(event.ErrorKind); kind != "" {
		entry = entry.Str("error_kind", kind)
	}
	if detail := RedactSensitiveText(event.ErrorDetail); detail != "" {
		entry = entry.Str("error_detail", detail)
	}

	entry.Msg("reconcile completed")
}

// identityFields are the presentation fields that name an instance.
var identityFields = []string{"number", "port_id", "vlan_id", "serial", "id", "name", "email", "bssid", "url"}

// SummarizeTargets lists the identifying values of every config entry.
func SummarizeTargets(config []map[string]any) []string {
	values := make([]string, 0, len(config))
	for _, entry := range config {
		for _, field := range identityFields {
			raw, ok := entry[field]
			if !ok || raw == nil {
				continue
			}
			if sensitiveFields.MatchString(field) {
				continue
			}
			values = append(values, fmt.Sprint(raw))
			break
		}
	}
	return uniqueStrings(values)
}

// RedactConfig returns a deep copy of config with secret-bearing fields
// replaced, suitable for logs and event payloads.
func RedactConfig(config []map[string]any) []map[string]any {
	if config == nil {
		return nil
	}
	out := make([]map[string]any, len(config))
	for i, entry := range config {
		out[i] = redactMap(entry)
	}
	return out
}

func redactMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for key, value := range in {
		if sensitiveFields.MatchString(key) && value != nil {
			out[key] = redacted
			continue
		}
		out[key] = redactValue(value)
	}
	return out
}

func redactValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return redactMap(typed)
	case []any:
		items := make([]any, len(typed))
		for i, item := range typed {
			items[i] = redactValue(item)
		}
		return items
	case []map[string]any:
		return RedactConfig(typed)
	default:
		return value
	}
}

// RedactSensitiveText removes obvious secrets from free-text error details.
func RedactSensitiveText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	out := bearerTokenPattern.ReplaceAllString(trimmed, "Bearer "+redacted)
	out = keyValuePattern.ReplaceAllStringFunc(out, func(match string) string {
		parts := strings.SplitN(match, ":", 2)
		if len(parts) == 2 {
			return fmt.Sprintf("%s: %s", strings.TrimSpace(parts[0]), redacted)
		}
		parts = strings.SplitN(match, "=", 2)
		if len(parts) == 2 {
			return fmt.Sprintf("%s=%s", strings.TrimSpace(parts[0]), redacted)
		}
		return redacted
	})
	return out
}

func operationCounts(ops map[string]int) map[string]int {
	out := map[string]int{"create": 0, "update": 0, "delete": 0}
	for kind, count := range ops {
		out[kind] = count
	}
	return out
}

func uniqueStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	unique := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		unique = append(unique, trimmed)
	}
	if len(unique) == 0 {
		return nil
	}
	slices.Sort(unique)
	return unique
}
