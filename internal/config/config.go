// ABOUTME: Centralized configuration for the geoatlas CLI
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/geoatlas/geoatlas/internal/storage/sqlite"
)

// DefaultBaseURL points at the public countries/states/cities snapshot tree.
const DefaultBaseURL = "https://raw.githubusercontent.com/dr5hn/countries-states-cities-database/master/json"

// Config holds all configuration for the atlas.
type Config struct {
	// Snapshot source settings
	BaseURL     string
	HTTPTimeout time.Duration
	MaxRetries  int

	// Local store settings
	DBPath string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		BaseURL:     getEnv("GEOATLAS_BASE_URL", DefaultBaseURL),
		HTTPTimeout: getEnvDuration("GEOATLAS_HTTP_TIMEOUT", 30*time.Second),
		MaxRetries:  getEnvInt("GEOATLAS_MAX_RETRIES", 3),
		DBPath:      getEnv("GEOATLAS_DB_PATH", sqlite.DefaultDBPath()),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("GEOATLAS_BASE_URL must be an http(s) URL, got %q", c.BaseURL)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("GEOATLAS_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("GEOATLAS_HTTP_TIMEOUT must be positive, got %v", c.HTTPTimeout)
	}
	if c.DBPath == "" {
		return fmt.Errorf("GEOATLAS_DB_PATH must not be empty")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
