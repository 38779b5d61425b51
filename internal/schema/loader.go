package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"variantgen/internal/common"
)

// schemaFile is the YAML root. Record fields are inlined so the file reads
// flat (record/package/variants/attrs/fields at top level).
type schemaFile struct {
	// Version of the schema format (for future compatibility).
	Version string `yaml:"version,omitempty"`

	Record `yaml:",inline"`
}

// LoadFile loads and parses a YAML schema file from the given path.
func LoadFile(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Record and applies defaults.
func Parse(data []byte) (*Record, error) {
	var sf schemaFile

	err := yaml.Unmarshal(data, &sf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	applyDefaults(&sf)

	return &sf.Record, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(sf *schemaFile) {
	if sf.Version == "" {
		sf.Version = "1"
	}

	if sf.Package == "" && sf.Name != "" {
		sf.Package = common.PascalToSnake(sf.Name)
	}
}
