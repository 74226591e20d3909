// Package config holds demo-binary configuration loaded from environment
// variables. The adjudication core itself takes no configuration — every
// adjudication call is pure and driven entirely by its arguments — this
// package only configures the CLI/demo layer around it.
package config

import "os"

// Config holds the demo binary's configuration.
type Config struct {
	LogLevel string // zerolog level name: debug, info, warn, error
	Ruleset  string // "szykman" (default) or "all-fail", see diplomat.Ruleset
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		LogLevel: envOrDefault("LOG_LEVEL", "info"),
		Ruleset:  envOrDefault("DIPLOMAT_RULESET", "szykman"),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
