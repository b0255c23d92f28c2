package web

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/address-parsing/internal/config"
)

// Config represents the web server configuration
type Config struct {
	Server ServerConfig `json:"server"`
	Auth   AuthConfig   `json:"auth"`
	Limits LimitConfig  `json:"limits"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port int    `json:"port"`
	Host string `json:"host"`
}

// AuthConfig contains API key settings
type AuthConfig struct {
	Enabled bool   `json:"enabled"`
	APIKey  string `json:"api_key"`
}

// LimitConfig bounds request sizes
type LimitConfig struct {
	MaxBatch       int `json:"max_batch"`
	SearchLimit    int `json:"search_limit"`
	MaxSearchLimit int `json:"max_search_limit"`
}

// LoadConfig loads configuration from a JSON file over the defaults
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	return cfg, nil
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
			Host: "0.0.0.0",
		},
		Limits: LimitConfig{
			MaxBatch:       100,
			SearchLimit:    20,
			MaxSearchLimit: 100,
		},
	}
}

// ConfigFromEnv returns the defaults overridden by WEB_* variables
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()
	cfg.Server.Host = config.GetEnv("WEB_HOST", cfg.Server.Host)
	cfg.Server.Port = config.GetEnvInt("WEB_PORT", cfg.Server.Port)
	cfg.Auth.APIKey = config.GetEnv("WEB_API_KEY", "")
	cfg.Auth.Enabled = config.GetEnvBool("WEB_AUTH_ENABLED", cfg.Auth.APIKey != "")
	cfg.Limits.MaxBatch = config.GetEnvInt("WEB_MAX_BATCH", cfg.Limits.MaxBatch)
	return cfg
}
