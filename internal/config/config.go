// Package config loads meraki-rm configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// ModeReadOnly allows gathered and preview runs only.
	ModeReadOnly = "read-only"
	// ModeReadWrite allows mutating runs.
	ModeReadWrite = "read-write"

	// MCPModeTask renders task snippets without calling the Dashboard.
	MCPModeTask = "task"
	// MCPModeLive reconciles against the Dashboard.
	MCPModeLive = "live"

	defaultDashboardURL = "https://api.meraki.com/api/v1"
	defaultListenAddr   = ":8088"
	defaultTimeout      = 30 * time.Second
	defaultMaxRetries   = 5
	defaultNATSSubject  = "meraki.rm.events"
	defaultConcurrency  = 4
)

// Config holds runtime configuration.
type Config struct {
	APIKey       string
	DashboardURL string
	LogLevel     string

	Timeout    time.Duration
	MaxRetries int

	Mode                string
	EnableWrite         bool
	RequireConfirmation bool
	AllowedScopes       []string
	MCPMode             string
	ListenAddr          string
	APIToken            string
	MetricsEnabled      bool
	NATSURL             string
	NATSSubject         string
	Concurrency         int
}

// Load returns configuration parsed from environment variables.
func Load() (Config, error) {
	cfg := Config{
		APIKey:              strings.TrimSpace(os.Getenv("MERAKI_API_KEY")),
		DashboardURL:        strings.TrimSpace(envOrDefault("MERAKI_DASHBOARD_URL", defaultDashboardURL)),
		LogLevel:            strings.ToLower(strings.TrimSpace(envOrDefault("MERAKI_RM_LOG_LEVEL", "info"))),
		Timeout:             envPositiveDuration("MERAKI_RM_TIMEOUT", defaultTimeout),
		MaxRetries:          envPositiveInt("MERAKI_RM_MAX_RETRIES", defaultMaxRetries),
		Mode:                strings.ToLower(strings.TrimSpace(envOrDefault("MERAKI_RM_MODE", ModeReadWrite))),
		EnableWrite:         envBool("MERAKI_RM_ENABLE_WRITE", true),
		RequireConfirmation: envBool("MERAKI_RM_REQUIRE_CONFIRMATION", true),
		AllowedScopes:       envList("MERAKI_RM_ALLOWED_SCOPES"),
		MCPMode:             strings.ToLower(strings.TrimSpace(envOrDefault("MERAKI_RM_MCP_MODE", MCPModeTask))),
		ListenAddr:          envOrDefault("MERAKI_RM_LISTEN_ADDR", defaultListenAddr),
		APIToken:            strings.TrimSpace(os.Getenv("MERAKI_RM_API_TOKEN")),
		MetricsEnabled:      envBool("MERAKI_RM_METRICS_ENABLED", true),
		NATSURL:             strings.TrimSpace(os.Getenv("MERAKI_RM_NATS_URL")),
		NATSSubject:         strings.TrimSpace(envOrDefault("MERAKI_RM_NATS_SUBJECT", defaultNATSSubject)),
		Concurrency:         envPositiveInt("MERAKI_RM_CONCURRENCY", defaultConcurrency),
	}

	switch cfg.Mode {
	case ModeReadOnly, ModeReadWrite:
	default:
		return Config{}, fmt.Errorf("invalid MERAKI_RM_MODE %q (allowed: %s|%s)", cfg.Mode, ModeReadOnly, ModeReadWrite)
	}
	switch cfg.MCPMode {
	case MCPModeTask, MCPModeLive:
	default:
		return Config{}, fmt.Errorf("invalid MERAKI_RM_MCP_MODE %q (allowed: %s|%s)", cfg.MCPMode, MCPModeTask, MCPModeLive)
	}

	if cfg.DashboardURL == "" {
		cfg.DashboardURL = defaultDashboardURL
	}
	cfg.DashboardURL = strings.TrimRight(cfg.DashboardURL, "/")
	if strings.TrimSpace(cfg.ListenAddr) == "" {
		cfg.ListenAddr = defaultListenAddr
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.NATSSubject == "" {
		cfg.NATSSubject = defaultNATSSubject
	}

	return cfg, nil
}

// RequireAPIKey reports a configuration error when no API key is set.
func (c Config) RequireAPIKey() error {
	if c.APIKey == "" {
		return fmt.Errorf("MERAKI_API_KEY is required")
	}
	return nil
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envBool(key string, defaultVal bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		switch strings.ToLower(v) {
		case "yes", "on":
			return true
		case "no", "off":
			return false
		default:
			return defaultVal
		}
	}
	return b
}

func envPositiveInt(key string, defaultVal int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultVal
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed <= 0 {
		return defaultVal
	}
	return parsed
}

func envPositiveDuration(key string, defaultVal time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultVal
	}
	parsed, err := time.ParseDuration(v)
	if err != nil || parsed <= 0 {
		return defaultVal
	}
	return parsed
}

func envList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
