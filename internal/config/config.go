// Package config provides configuration loading and validation for the API
// server and its maintenance commands.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Defaults applied when neither the environment nor a config file sets a value.
const (
	DefaultPort           = 8080
	DefaultModelServerURL = "http://localhost:8000"
)

// Config represents the server configuration. Values come from the
// environment, optionally seeded from a JSON file; environment always wins.
type Config struct {
	Port           int    `json:"port,omitempty"`             // HTTP listen port
	DatabaseURL    string `json:"database_url,omitempty"`     // PostgreSQL connection URL
	ModelServerURL string `json:"model_server_url,omitempty"` // Prediction service base URL
	CatalogPath    string `json:"catalog_path,omitempty"`     // Optional role catalog override file
	CORSOrigin     string `json:"cors_origin,omitempty"`      // Allowed origin, "*" if empty
}

// LoadFile loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds the configuration from environment variables, using file
// values (when a file was given) as defaults.
func FromEnv(file *Config) (*Config, error) {
	cfg := Config{}
	if file != nil {
		cfg = *file
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("MODEL_SERVER_URL"); v != "" {
		cfg.ModelServerURL = v
	}
	if v := os.Getenv("CATALOG_PATH"); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv("CORS_ORIGIN"); v != "" {
		cfg.CORSOrigin = v
	}

	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.ModelServerURL == "" {
		cfg.ModelServerURL = DefaultModelServerURL
	}
	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = "*"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: port out of range: %d", c.Port)
	}

	if c.CatalogPath != "" {
		if _, err := os.Stat(c.CatalogPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.CatalogPath)
		}
	}

	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
