// Package config provides configuration loading and management.
package config

import "github.com/sgenkit/sgen/internal/generator"

// DefaultTheme is the highlight theme used when none is configured. It
// mirrors highlight.DefaultTheme; config does not import the renderer.
const DefaultTheme = "monokai"

// GeneratorConfig locates the external generator.
type GeneratorConfig struct {
	// Path is the generator executable.
	// Env: SGEN_GENERATOR, Default: /usr/local/bin/swiftgen
	Path string `json:"path,omitempty" yaml:"path,omitempty" mapstructure:"path"`
}

// HighlightConfig controls styled display of generated code.
type HighlightConfig struct {
	// Theme is a chroma style name.
	// Env: SGEN_THEME, Default: monokai
	Theme string `json:"theme,omitempty" yaml:"theme,omitempty" mapstructure:"theme"`

	// Enabled turns highlighting on. Default: true.
	Enabled *bool `json:"enabled,omitempty" yaml:"enabled,omitempty" mapstructure:"enabled"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty" mapstructure:"timestamps"`
}

// DefaultsConfig controls how parameter values are seeded.
type DefaultsConfig struct {
	// Seed fills template parameters with catalog defaults before user
	// values are applied. Default: true. Override with --no-defaults.
	Seed *bool `json:"seed,omitempty" yaml:"seed,omitempty" mapstructure:"seed"`
}

// Config represents the sgen configuration file.
// Loaded from ~/.sgen/config.yaml, validated against the embedded CUE schema.
type Config struct {
	Generator GeneratorConfig `json:"generator,omitempty" yaml:"generator,omitempty" mapstructure:"generator"`
	Highlight HighlightConfig `json:"highlight,omitempty" yaml:"highlight,omitempty" mapstructure:"highlight"`
	Log       LogConfig       `json:"log,omitempty" yaml:"log,omitempty" mapstructure:"log"`
	Defaults  DefaultsConfig  `json:"defaults,omitempty" yaml:"defaults,omitempty" mapstructure:"defaults"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `sgen config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Generator: GeneratorConfig{Path: generator.DefaultPath},
		Highlight: HighlightConfig{Theme: DefaultTheme, Enabled: boolPtr(true)},
		Log:       LogConfig{Timestamps: boolPtr(true)},
		Defaults:  DefaultsConfig{Seed: boolPtr(true)},
	}
}

func boolPtr(b bool) *bool {
	return &b
}
