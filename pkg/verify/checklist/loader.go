package checklist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FromFile loads a checklist from a file, auto-detecting format by extension.
// Supported extensions: .yaml, .yml, .json
func FromFile(path string) (Checklist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Checklist{}, fmt.Errorf("read checklist file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json":
		return FromJSON(data)
	default:
		return Checklist{}, fmt.Errorf("unsupported checklist file extension: %s", ext)
	}
}

// FromYAML parses YAML data into a Checklist.
// YAML scalars keep their native types: integers decode as int,
// floats as float64, booleans as bool.
func FromYAML(data []byte) (Checklist, error) {
	var list Checklist
	if err := yaml.Unmarshal(data, &list); err != nil {
		return Checklist{}, fmt.Errorf("parse yaml: %w", err)
	}
	return list, nil
}

// FromJSON parses JSON data into a Checklist.
// JSON numbers decode as float64.
func FromJSON(data []byte) (Checklist, error) {
	var list Checklist
	if err := json.Unmarshal(data, &list); err != nil {
		return Checklist{}, fmt.Errorf("parse json: %w", err)
	}
	return list, nil
}
