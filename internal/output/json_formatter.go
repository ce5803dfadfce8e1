package output

import (
	"encoding/json"
	"io"

	"pigeonhole/internal/model"
)

// JSONFormatter renders organize reports as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format writes the organize report as formatted JSON to the writer.
func (f *JSONFormatter) Format(report *model.Report, w io.Writer) error {
	encoder := json.NewEncoder(w)
	// Pretty print with 2-space indentation
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// Name returns the name of the formatter.
func (f *JSONFormatter) Name() string {
	return "json"
}
