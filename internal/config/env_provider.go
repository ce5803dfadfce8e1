package config

import (
	"context"
	"os"
	"strings"
)

// EnvProvider provides configuration from environment variables.
type EnvProvider struct {
	prefix   string
	priority int
}

// NewEnvProvider creates a new environment provider.
func NewEnvProvider(prefix string, priority int) *EnvProvider {
	return &EnvProvider{
		prefix:   prefix,
		priority: priority,
	}
}

// Name returns the provider name.
func (p *EnvProvider) Name() string {
	return "env:" + p.prefix
}

// Priority returns the provider priority.
func (p *EnvProvider) Priority() int {
	return p.priority
}

// Load loads configuration from the environment.
func (p *EnvProvider) Load(ctx context.Context) (*Config, error) {
	// Check for context cancellation
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	config := &Config{
		Log:      LogConfig{},
		Organize: OrganizeConfig{},
		Store:    StoreConfig{},
	}

	// Load log configuration
	p.loadStringFromEnv("LOG_LEVEL", &config.Log.Level)
	p.loadStringFromEnv("LOG_FORMAT", &config.Log.Format)
	p.loadStringFromEnv("LOG_OUTPUT", &config.Log.Output)

	// Load organize configuration
	p.loadBoolFromEnv("ORGANIZE_RECURSIVE", &config.Organize.Recursive)
	p.loadBoolFromEnv("ORGANIZE_DELETE_EMPTY", &config.Organize.DeleteEmpty)
	p.loadStringFromEnv("ORGANIZE_FORMAT", &config.Organize.Format)
	p.loadStringFromEnv("ORGANIZE_OUTPUT", &config.Organize.Output)

	// Load store configuration
	p.loadStringFromEnv("STORE_DIR", &config.Store.Dir)

	return config, nil
}

// loadStringFromEnv loads a string from the environment.
func (p *EnvProvider) loadStringFromEnv(key string, target *string) {
	if value := os.Getenv(p.prefix + key); value != "" {
		*target = value
	}
}

// loadBoolFromEnv loads a bool from the environment.
func (p *EnvProvider) loadBoolFromEnv(key string, target *bool) {
	if value := os.Getenv(p.prefix + key); value != "" {
		lower := strings.ToLower(value)
		*target = lower == "true" || value == "1" || lower == "yes" || lower == "on"
	}
}
