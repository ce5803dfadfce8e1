package output

import (
	"fmt"
	"io"

	"pigeonhole/internal/model"
)

// ReportFormatter renders organize reports to different output formats
type ReportFormatter interface {
	Format(report *model.Report, w io.Writer) error
}

// FormatterRegistry manages available report formatters
type FormatterRegistry struct {
	formatters map[string]ReportFormatter
}

// NewFormatterRegistry creates a new FormatterRegistry
func NewFormatterRegistry() *FormatterRegistry {
	return &FormatterRegistry{
		formatters: make(map[string]ReportFormatter),
	}
}

// Register adds a new formatter to the registry
func (r *FormatterRegistry) Register(name string, formatter ReportFormatter) error {
	if name == "" {
		return fmt.Errorf("formatter name cannot be empty")
	}
	if formatter == nil {
		return fmt.Errorf("formatter cannot be nil")
	}
	r.formatters[name] = formatter
	return nil
}

// Get retrieves a formatter by name from the registry
func (r *FormatterRegistry) Get(name string) (ReportFormatter, bool) {
	formatter, exists := r.formatters[name]
	return formatter, exists
}

// List returns a list of registered formatter names
func (r *FormatterRegistry) List() []string {
	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}
	return names
}

// Format renders the report using the named formatter and writes it to the provided writer
func (r *FormatterRegistry) Format(name string, report *model.Report, w io.Writer) error {
	formatter, exists := r.formatters[name]
	if !exists {
		return fmt.Errorf("formatter '%s' not found", name)
	}
	return formatter.Format(report, w)
}

// InitFormatters initializes the default report formatters and returns a registry
func InitFormatters() (*FormatterRegistry, error) {
	registry := NewFormatterRegistry()

	err := registry.Register("json", NewJSONFormatter())
	if err != nil {
		return nil, err
	}
	err = registry.Register("yaml", NewYAMLFormatter())
	if err != nil {
		return nil, err
	}
	err = registry.Register("pretty", NewPrettyFormatter())
	if err != nil {
		return nil, err
	}
	return registry, nil
}

// FormatBytes converts a byte count to a human-readable string
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
