package config

import (
	"strings"
	"testing"
)

// TestDefaultValidator tests the defaultValidator.
func TestDefaultValidator(t *testing.T) {
	validator := &defaultValidator{}

	tests := []struct {
		name     string
		config   *Config
		wantErr  bool
		errField string
	}{
		{
			name: "valid config",
			config: &Config{
				Log: LogConfig{
					Level:  "info",
					Format: "text",
					Output: "stdout",
				},
				Organize: OrganizeConfig{
					Recursive: true,
					Format:    "json",
				},
				Store: StoreConfig{
					Dir: "/data",
				},
			},
			wantErr: false,
		},
		{
			name: "missing log level",
			config: &Config{
				Log: LogConfig{
					Format: "text",
					Output: "stdout",
				},
			},
			wantErr:  true,
			errField: "log level",
		},
		{
			name: "invalid log level",
			config: &Config{
				Log: LogConfig{
					Level:  "invalid",
					Format: "text",
					Output: "stdout",
				},
			},
			wantErr:  true,
			errField: "log level",
		},
		{
			name: "invalid log format",
			config: &Config{
				Log: LogConfig{
					Level:  "info",
					Format: "invalid",
					Output: "stdout",
				},
			},
			wantErr:  true,
			errField: "log format",
		},
		{
			name: "empty log format allowed",
			config: &Config{
				Log: LogConfig{
					Level: "info",
				},
			},
			wantErr: false,
		},
		{
			name: "invalid report format",
			config: &Config{
				Log: LogConfig{
					Level:  "info",
					Format: "text",
				},
				Organize: OrganizeConfig{
					Format: "invalid",
				},
			},
			wantErr:  true,
			errField: "report format",
		},
		{
			name: "empty report format allowed",
			config: &Config{
				Log: LogConfig{
					Level: "info",
				},
				Organize: OrganizeConfig{},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(tt.config)
			if tt.wantErr {
				if err == nil {
					t.Errorf("%s: expected error but got none", tt.name)
				} else if tt.errField != "" && !strings.Contains(err.Error(), tt.errField) {
					t.Errorf("%s: expected error containing %q, got %q", tt.name, tt.errField, err.Error())
				}
			} else if err != nil {
				t.Errorf("%s: unexpected error: %v", tt.name, err)
			}
		})
	}
}
