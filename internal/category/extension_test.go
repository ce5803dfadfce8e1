package category

import "testing"

func TestNormalizeExt(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already normalized", ".pdf", ".pdf"},
		{"missing dot", "pdf", ".pdf"},
		{"uppercase", ".PDF", ".pdf"},
		{"mixed case without dot", "TaR", ".tar"},
		{"surrounding space", "  .log  ", ".log"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"bare dot", ".", "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeExt(tt.in); got != tt.want {
				t.Errorf("NormalizeExt(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtensionOf(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "a.pdf", ".pdf"},
		{"uppercase", "REPORT.PDF", ".pdf"},
		{"multiple dots keeps final suffix", "archive.tar.gz", ".gz"},
		{"no dot", "d", ""},
		{"leading dot only", ".gitignore", ""},
		{"leading dot with suffix", ".config.json", ".json"},
		{"trailing dot", "name.", ""},
		{"dot directory style", "..hidden", ".hidden"},
		{"empty name", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtensionOf(tt.in); got != tt.want {
				t.Errorf("ExtensionOf(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
