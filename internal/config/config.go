package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Store backend names accepted in config
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

// Config represents the application configuration
type Config struct {
	// DataDir holds board documents (and the sqlite database when that
	// backend is selected). Defaults to ~/.taskboard.
	DataDir string `yaml:"data_dir"`

	// Store selects the persistence backend: "file" or "sqlite"
	Store string `yaml:"store"`

	Server   ServerConfig   `yaml:"server"`
	Webhooks WebhooksConfig `yaml:"webhooks"`
	Batch    BatchConfig    `yaml:"batch"`
}

// ServerConfig configures the REST server
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// WebhooksConfig lists endpoints that receive change events
type WebhooksConfig struct {
	Endpoints []string `yaml:"endpoints"`
}

// BatchConfig bounds batch requests
type BatchConfig struct {
	MaxOperations int `yaml:"max_operations"`
}

// Default returns the built-in configuration
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		DataDir: filepath.Join(home, ".taskboard"),
		Store:   StoreFile,
		Server:  ServerConfig{Addr: "127.0.0.1:3001"},
		Batch:   BatchConfig{MaxOperations: 100},
	}
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist. The TASKBOARD_CONFIG
// environment variable overrides the config path.
func Load() (*Config, error) {
	configPath := os.Getenv("TASKBOARD_CONFIG")
	if configPath == "" {
		var err error
		configPath, err = defaultPath()
		if err != nil {
			return Default(), nil
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// TemplatesDir returns the directory holding user board templates
func (c *Config) TemplatesDir() string {
	return filepath.Join(c.DataDir, "templates")
}

func (c *Config) validate() error {
	if c.Store != StoreFile && c.Store != StoreSQLite {
		return fmt.Errorf("invalid store backend %q: expected %q or %q", c.Store, StoreFile, StoreSQLite)
	}
	if c.Batch.MaxOperations <= 0 {
		return fmt.Errorf("invalid batch.max_operations %d: must be > 0", c.Batch.MaxOperations)
	}
	return nil
}

func defaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".taskboard", "config.yaml"), nil
}
