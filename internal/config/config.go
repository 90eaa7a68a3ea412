// Package config holds devcon's host configuration: the console prompt,
// command-history storage, and logging. Config is loaded from a YAML file
// with environment-variable overrides; a missing file yields defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all devcon configuration.
type Config struct {
	// Prompt is the string shown before the input field.
	Prompt string `yaml:"prompt"`

	// History configures persistent command history.
	History HistoryConfig `yaml:"history"`

	// Logging configures structured logging.
	Logging LoggingConfig `yaml:"logging"`
}

// HistoryConfig configures the SQLite-backed command history.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`  // database file; created on first use
	Limit   int    `yaml:"limit"` // rows kept per session, oldest trimmed first
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	Path  string `yaml:"path"`  // log file; empty logs to stderr
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Prompt: "> ",
		History: HistoryConfig{
			Enabled: true,
			Path:    filepath.Join(".devcon", "history.db"),
			Limit:   500,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from path. A missing file is not an error: the
// defaults are returned. Environment variables override file values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies DEVCON_* environment variables on top of file
// values. Only non-empty variables override.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("DEVCON_PROMPT"); v != "" {
		c.Prompt = v
	}
	if v := os.Getenv("DEVCON_HISTORY_PATH"); v != "" {
		c.History.Path = v
	}
	if v := os.Getenv("DEVCON_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("DEVCON_LOG_PATH"); v != "" {
		c.Logging.Path = v
	}
}

// Validate checks the configuration for values the host cannot start with.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (want debug, info, warn or error)", c.Logging.Level)
	}
	if c.History.Enabled {
		if c.History.Path == "" {
			return fmt.Errorf("history is enabled but history.path is empty")
		}
		if c.History.Limit <= 0 {
			return fmt.Errorf("history.limit must be positive, got %d", c.History.Limit)
		}
	}
	return nil
}
