package formats

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a JSON or YAML format configuration document. Lists missing
// from the document fall back to the defaults, so a file can override a single
// kind without restating the rest.
func Parse(data []byte) (Config, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Config{}, fmt.Errorf("formats: document is empty")
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("formats: parse document: invalid JSON or YAML")
		}
	}

	defaults := Default()
	if len(cfg.DateInputFormats) == 0 {
		cfg.DateInputFormats = defaults.DateInputFormats
	}
	if len(cfg.TimeInputFormats) == 0 {
		cfg.TimeInputFormats = defaults.TimeInputFormats
	}
	if len(cfg.DateTimeInputFormats) == 0 {
		cfg.DateTimeInputFormats = defaults.DateTimeInputFormats
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseFile reads and parses a configuration file from disk.
func ParseFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("formats: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("formats: file %s: %w", path, err)
	}
	return cfg, nil
}
