// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the server configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or come from the
// environment.
type Config struct {
	Port         int    `json:"port,omitempty"`           // HTTP listen port
	DatabaseURL  string `json:"database_url,omitempty"`   // PostgreSQL connection URL
	GeminiAPIKey string `json:"gemini_api_key,omitempty"` // Gemini API key
	CatalogPath  string `json:"catalog_path,omitempty"`   // Taxonomy catalog JSON file
	UploadDir    string `json:"upload_dir,omitempty"`     // Directory for uploaded exam files
}

// Load reads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
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

// FromEnv builds a configuration from environment variables only.
func FromEnv() *Config {
	cfg := &Config{}
	cfg.MergeEnv()
	return cfg
}

// MergeEnv fills unset fields from the environment. File values win over
// environment values.
func (c *Config) MergeEnv() {
	if c.Port == 0 {
		if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
			c.Port = port
		}
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.GeminiAPIKey == "" {
		c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.CatalogPath == "" {
		c.CatalogPath = os.Getenv("CATALOG_PATH")
	}
	if c.UploadDir == "" {
		c.UploadDir = os.Getenv("UPLOAD_DIR")
	}
}

// Validate checks that the configuration has everything the server needs.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("config error: 'database_url' is required (or set DATABASE_URL)")
	}
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("config error: 'gemini_api_key' is required (or set GEMINI_API_KEY)")
	}
	return nil
}
