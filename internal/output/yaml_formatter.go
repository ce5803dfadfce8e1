package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"pigeonhole/internal/model"
)

// YAMLFormatter renders organize reports as YAML.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// Format writes the organize report as formatted YAML to the writer.
func (f *YAMLFormatter) Format(report *model.Report, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	defer func(encoder *yaml.Encoder) {
		_ = encoder.Close()
	}(encoder)

	return encoder.Encode(report)
}

// Name returns the name of the formatter.
func (f *YAMLFormatter) Name() string {
	return "yaml"
}
