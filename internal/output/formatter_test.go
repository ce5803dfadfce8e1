package output

import (
	"bytes"
	"slices"
	"testing"

	"pigeonhole/internal/model"
)

// TestFormatBytes tests the FormatBytes function to ensure it correctly converts byte counts into human-readable formats.
func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{
			name:     "zero bytes",
			bytes:    0,
			expected: "0 B",
		},
		{
			name:     "bytes",
			bytes:    500,
			expected: "500 B",
		},
		{
			name:     "kilobytes",
			bytes:    1536,
			expected: "1.5 KB",
		},
		{
			name:     "megabytes",
			bytes:    1572864,
			expected: "1.5 MB",
		},
		{
			name:     "gigabytes",
			bytes:    1610612736,
			expected: "1.5 GB",
		},
		{
			name:     "terabytes",
			bytes:    1649267441664,
			expected: "1.5 TB",
		},
		{
			name:     "petabytes",
			bytes:    1688849860263936,
			expected: "1.5 PB",
		},
		{
			name:     "exabytes",
			bytes:    1729382256910270464,
			expected: "1.5 EB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatBytes(tt.bytes)
			if result != tt.expected {
				t.Errorf("FormatBytes(%d) = %s, want %s", tt.bytes, result, tt.expected)
			}
		})
	}
}

// TestInitFormatters verifies that the default registry knows all shipped formats.
func TestInitFormatters(t *testing.T) {
	registry, err := InitFormatters()
	if err != nil {
		t.Fatalf("InitFormatters() error = %v", err)
	}

	for _, name := range []string{"json", "yaml", "pretty"} {
		if _, ok := registry.Get(name); !ok {
			t.Errorf("formatter %q not registered", name)
		}
	}

	names := registry.List()
	if len(names) != 3 {
		t.Errorf("List() returned %d names, want 3: %v", len(names), names)
	}
}

func TestRegistryRegister(t *testing.T) {
	registry := NewFormatterRegistry()

	if err := registry.Register("", NewJSONFormatter()); err == nil {
		t.Error("Register with empty name should fail")
	}
	if err := registry.Register("json", nil); err == nil {
		t.Error("Register with nil formatter should fail")
	}
	if err := registry.Register("json", NewJSONFormatter()); err != nil {
		t.Errorf("Register() error = %v", err)
	}
	if !slices.Contains(registry.List(), "json") {
		t.Error("registered formatter missing from List()")
	}
}

func TestRegistryFormatUnknownName(t *testing.T) {
	registry := NewFormatterRegistry()

	var buf bytes.Buffer
	err := registry.Format("toml", &model.Report{Stats: &model.Stats{}}, &buf)
	if err == nil {
		t.Error("Format with unknown formatter should fail")
	}
}
