package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

const configHeader = `# sgen configuration.
#
# Precedence for every value: flag > environment > this file > default.
# Environment overrides: SGEN_GENERATOR, SGEN_THEME, SGEN_HIGHLIGHT_ENABLED,
# SGEN_LOG_TIMESTAMPS, SGEN_DEFAULTS_SEED.
`

// Marshal renders cfg as a commented YAML config file.
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(configHeader)
	buf.WriteString("\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return buf.Bytes(), nil
}
