package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeConfigFile writes config content to a file with the given name and format.
func writeConfigFile(t *testing.T, dir, name string, format string, content string) string {
	t.Helper()

	path := filepath.Join(dir, name+"."+format)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

// TestDefaultConfig tests the default configuration.
func TestDefaultConfig(t *testing.T) {
	want := &Config{
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

	got := DefaultConfig()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DefaultConfig() = %+v\nwant %+v", got, want)
	}
}
