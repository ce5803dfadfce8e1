package config

import (
	"reflect"
	"testing"
)

// TestDefaultMerger tests the defaultMerger.
func TestDefaultMerger(t *testing.T) {
	merger := &defaultMerger{}

	tests := []struct {
		name     string
		base     *Config
		override *Config
		want     *Config
	}{
		{
			name: "merge log config",
			base: &Config{
				Log: LogConfig{
					Level:  "info",
					Format: "text",
					Output: "stdout",
				},
			},
			override: &Config{
				Log: LogConfig{
					Level:  "debug",
					Format: "json",
				},
			},
			want: &Config{
				Log: LogConfig{
					Level:  "debug",
					Format: "json",
					Output: "stdout",
				},
			},
		},
		{
			name: "merge organize config",
			base: &Config{
				Organize: OrganizeConfig{
					Recursive: false,
					Format:    "pretty",
				},
			},
			override: &Config{
				Organize: OrganizeConfig{
					Recursive:   true,
					DeleteEmpty: true,
					Output:      "report.json",
				},
			},
			want: &Config{
				Organize: OrganizeConfig{
					Recursive:   true,
					DeleteEmpty: true,
					Format:      "pretty",
					Output:      "report.json",
				},
			},
		},
		{
			name: "merge store config",
			base: &Config{
				Store: StoreConfig{
					Dir: "/old/location",
				},
			},
			override: &Config{
				Store: StoreConfig{
					Dir: "/new/location",
				},
			},
			want: &Config{
				Store: StoreConfig{
					Dir: "/new/location",
				},
			},
		},
		{
			name: "empty override",
			base: &Config{
				Log: LogConfig{
					Level:  "info",
					Format: "text",
					Output: "stdout",
				},
				Organize: OrganizeConfig{
					Recursive: true,
					Format:    "yaml",
				},
				Store: StoreConfig{
					Dir: "/data",
				},
			},
			override: &Config{},
			want: &Config{
				Log: LogConfig{
					Level:  "info",
					Format: "text",
					Output: "stdout",
				},
				Organize: OrganizeConfig{
					Recursive: true,
					Format:    "yaml",
				},
				Store: StoreConfig{
					Dir: "/data",
				},
			},
		},
		{
			name: "empty base",
			base: &Config{},
			override: &Config{
				Log: LogConfig{
					Level:  "info",
					Format: "text",
					Output: "stdout",
				},
				Organize: OrganizeConfig{
					DeleteEmpty: true,
				},
			},
			want: &Config{
				Log: LogConfig{
					Level:  "info",
					Format: "text",
					Output: "stdout",
				},
				Organize: OrganizeConfig{
					DeleteEmpty: true,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := merger.Merge(tt.base, tt.override)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Merge() = %+v\nwant %+v", got, tt.want)
			}
		})
	}
}
