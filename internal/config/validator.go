package config

import (
	"errors"
	"fmt"
	"strings"
)

// defaultValidator provides comprehensive validation.
type defaultValidator struct{}

// Validate validates the configuration.
func (v *defaultValidator) Validate(config *Config) error {
	if err := v.validateLogConfig(&config.Log); err != nil {
		return fmt.Errorf("log config validation failed: %w", err)
	}

	if err := v.validateOrganizeConfig(&config.Organize); err != nil {
		return fmt.Errorf("organize config validation failed: %w", err)
	}

	return nil
}

// validateLogConfig validates the log configuration.
func (v *defaultValidator) validateLogConfig(config *LogConfig) error {
	if config.Level == "" {
		return errors.New("log level is required")
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, config.Level) {
		return fmt.Errorf("invalid log level: %s, must be one of %v", config.Level, validLevels)
	}

	if config.Format != "" {
		validFormats := []string{"text", "json", "pretty", "discard"}
		if !contains(validFormats, config.Format) {
			return fmt.Errorf("invalid log format: %s, must be one of %v", config.Format, validFormats)
		}
	}

	return nil
}

// validateOrganizeConfig validates the organize configuration.
func (v *defaultValidator) validateOrganizeConfig(config *OrganizeConfig) error {
	if config.Format != "" {
		validFormats := []string{"pretty", "json", "yaml"}
		if !contains(validFormats, config.Format) {
			return fmt.Errorf("invalid report format: %s, must be one of %v", config.Format, validFormats)
		}
	}
	return nil
}

// contains returns true if the given string is in the slice.
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if strings.EqualFold(s, item) {
			return true
		}
	}
	return false
}
