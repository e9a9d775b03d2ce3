package publisher

import (
	"os"
	"strconv"
)

// Config holds all configuration for the remote publisher subsystem.
type Config struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Token      string
	TimeoutMs  int
	MaxRetries int
}

// DefaultConfig returns a Config with sensible defaults.
// The remote publisher is disabled until an endpoint is configured.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "",
		TimeoutMs:  15000,
		MaxRetries: 1,
	}
}

// LoadConfig reads publisher configuration from environment variables,
// falling back to defaults for any unset values. Setting an endpoint
// enables the subsystem.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("PAUTA_PUBLISHER_URL"); v != "" {
		cfg.Endpoint = v
		cfg.Enabled = true
	}
	if v := os.Getenv("PAUTA_PUBLISHER_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("PAUTA_PUBLISHER_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("PAUTA_PUBLISHER_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("PAUTA_PUBLISHER_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	return cfg
}
