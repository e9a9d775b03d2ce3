package assist

import (
	"os"
	"strconv"
)

// Config holds configuration for the content generation subsystem.
type Config struct {
	Enabled   bool
	Endpoint  string
	Token     string
	TimeoutMs int
}

// DefaultConfig returns a Config with generation disabled.
func DefaultConfig() Config {
	return Config{
		Enabled:   false,
		TimeoutMs: 30000,
	}
}

// LoadConfig reads generation configuration from environment variables.
// Setting an endpoint enables the subsystem.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("PAUTA_ASSIST_URL"); v != "" {
		cfg.Endpoint = v
		cfg.Enabled = true
	}
	if v := os.Getenv("PAUTA_ASSIST_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("PAUTA_ASSIST_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}

	return cfg
}
