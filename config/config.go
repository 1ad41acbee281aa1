package config

import (
	"os"
	"strings"
)

// Config holds all process-wide settings. It is loaded once at startup and
// passed explicitly into services so tests can substitute their own values.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	HealthModel string
	Host        string
	Port        string
	Environment string
}

// Load reads configuration from environment variables, applying defaults for
// anything not set. A missing OPENAI_API_KEY is not fatal here - the health
// check and search endpoints report it instead.
func Load() Config {
	cfg := Config{
		APIKey:      os.Getenv("OPENAI_API_KEY"),
		BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		Model:       getEnv("OPENAI_MODEL", "gpt-4o-search-preview"),
		HealthModel: getEnv("OPENAI_HEALTH_MODEL", "gpt-4o"),
		Host:        getEnv("HOST", "0.0.0.0"),
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
	}

	// Normalize a port given as ":8080"
	cfg.Port = strings.TrimPrefix(cfg.Port, ":")

	return cfg
}

// IsConfigured reports whether the external API credential is present.
func (c Config) IsConfigured() bool {
	return c.APIKey != ""
}

// Addr returns the host:port bind address for the HTTP server.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// getEnv returns the environment variable value or a default if unset
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
