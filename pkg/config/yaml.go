package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// FromYAML parses Settings from YAML bytes. Unset keys keep their defaults.
func FromYAML(data []byte) (*Settings, error) {
	settings := NewSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return settings, nil
}

// ToYAML serializes the settings to YAML.
func (s *Settings) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	return data, nil
}

// LoadFile reads Settings from a YAML file. A missing file is not an error:
// defaults are returned. Any other read or parse failure is reported.
func LoadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewSettings(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return FromYAML(data)
}
