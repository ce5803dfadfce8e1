// Package config provides a streamlined, extensible configuration management system.
// It supports multiple configuration sources with priority-based merging and validation.
//
// The default configuration sources include environment variables and configuration files in the following formats:
//   - TOML
//   - JSON
//   - YAML
//
// Configuration is loaded from multiple providers, merged based on priority, and validated before use.
//
// The package offers sensible defaults but allows extensive customization through interfaces for providers,
// validators, and mergers.
//
// Note: initialization of the package-global loader is performed in
// `init()` within `config.go`. For explicit/custom loading use a
// `NewLoader()` instance.
package config

import (
	"context"
	"os"
	"path/filepath"

	"pigeonhole/internal/logger"
)

// Config represents the application configuration structure.
type Config struct {
	// Log holds the logging configuration.
	Log LogConfig `toml:"log" yaml:"log" json:"log"`

	// Organize holds the 'organize' command configuration.
	Organize OrganizeConfig `toml:"organize" yaml:"organize" json:"organize"`

	// Store holds the configuration of the persisted category/preset documents.
	Store StoreConfig `toml:"store" yaml:"store" json:"store"`
}

// LogConfig holds the logging configuration.
type LogConfig struct {
	// Level sets the logging level (e.g., "debug", "info", "warn", "error").
	Level string `toml:"level" yaml:"level" json:"level"`

	// Format sets the logging format (e.g., "text", "json", "pretty", "discard").
	Format string `toml:"format" yaml:"format" json:"format"`

	// Output sets the logging output (e.g., "stdout", "stderr", "null", or file path).
	Output string `toml:"output" yaml:"output" json:"output"`
}

// OrganizeConfig holds configuration for the 'organize' command.
type OrganizeConfig struct {
	// Recursive organizes files at any depth under the root folder instead
	// of direct children only.
	Recursive bool `toml:"recursive" yaml:"recursive" json:"recursive"`

	// DeleteEmpty removes empty subdirectories after a recursive run.
	DeleteEmpty bool `toml:"delete_empty" yaml:"delete_empty" json:"delete_empty"`

	// Format sets the report format (e.g., "pretty", "json", "yaml").
	Format string `toml:"format" yaml:"format" json:"format"`

	// Output sets the file to write the report to (default is stdout).
	Output string `toml:"output" yaml:"output" json:"output"`
}

// StoreConfig holds the configuration of the document store.
type StoreConfig struct {
	// Dir is the directory holding the categories and presets documents.
	// Empty means the per-user default location.
	Dir string `toml:"dir" yaml:"dir" json:"dir"`
}

// Provider defines the interface for configuration providers.
type Provider interface {
	// Name returns the provider name for identification.
	Name() string

	// Priority returns the provider priority (higher numbers = higher priority).
	Priority() int

	// Load loads configuration from the provider.
	Load(ctx context.Context) (*Config, error)
}

// Validator defines the interface for configuration validation.
type Validator interface {
	Validate(config *Config) error
}

// Merger defines the interface for custom configuration merging.
type Merger interface {
	Merge(base, override *Config) *Config
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "pretty",
			Output: "stdout",
		},
		Organize: OrganizeConfig{
			Format: "pretty",
		},
		Store: StoreConfig{},
	}
}

func init() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = os.TempDir()
		logger.Error("Could not get the user config directory. Using "+configDir, "error", err)
	}

	configDir = filepath.Join(configDir, "pigeonhole")
	if err := os.MkdirAll(configDir, 0o750); err != nil {
		logger.Error("Could not create config directory", "error", err, "path", configDir)
	}

	// Initialize the global loader once. If createLoader fails, we log
	// the error but continue; Load() will return an error if used before
	// successful initialization.
	globalOnce.Do(func() {
		var e error
		globalLoader, e = createLoader(configDir)
		if e != nil {
			logger.Error("Failed to initialize configuration", "error", e)
		}
	})
}
