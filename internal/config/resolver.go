package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/sgenkit/sgen/internal/generator"
	"github.com/sgenkit/sgen/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// Config keys, as written in the config file.
const (
	KeyGeneratorPath    = "generator.path"
	KeyTheme            = "highlight.theme"
	KeyHighlightEnabled = "highlight.enabled"
	KeyTimestamps       = "log.timestamps"
	KeySeed             = "defaults.seed"
)

// envPrefix is the environment variable prefix for sgen configuration.
const envPrefix = "SGEN"

// ResolvedValue is one configuration value with its provenance.
type ResolvedValue struct {
	// Key is the config key.
	Key string
	// Value is the winning value.
	Value string
	// Source indicates where Value came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// Bool parses Value as a boolean. Resolve only accepts parseable booleans
// for boolean keys, so the error case is limited to misuse.
func (r ResolvedValue) Bool() bool {
	b, _ := strconv.ParseBool(r.Value)
	return b
}

// candidate is one source's offer for a key.
type candidate struct {
	source ConfigSource
	value  string
	set    bool
}

// resolve picks the first set candidate and records the other set ones as
// shadowed.
func resolve(key string, candidates ...candidate) ResolvedValue {
	result := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]string)}
	for _, c := range candidates {
		if !c.set {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		if c.source != SourceDefault {
			result.Shadowed[c.source] = c.value
		}
	}
	return result
}

func stringCandidate(source ConfigSource, value string) candidate {
	return candidate{source: source, value: value, set: value != ""}
}

func boolCandidate(source ConfigSource, value *bool) candidate {
	if value == nil {
		return candidate{source: source}
	}
	return candidate{source: source, value: strconv.FormatBool(*value), set: true}
}

// newEnv returns a viper instance reading only SGEN_* environment variables.
// The two common overrides have short names; the rest follow the key path,
// e.g. SGEN_LOG_TIMESTAMPS.
func newEnv() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	_ = v.BindEnv(KeyGeneratorPath, "SGEN_GENERATOR", "SGEN_GENERATOR_PATH")
	_ = v.BindEnv(KeyTheme, "SGEN_THEME", "SGEN_HIGHLIGHT_THEME")
	_ = v.BindEnv(KeyHighlightEnabled)
	_ = v.BindEnv(KeyTimestamps)
	_ = v.BindEnv(KeySeed)
	return v
}

// envBool reads a boolean environment override. An unparseable value is an
// error rather than silently false.
func envBool(env *viper.Viper, key string) (candidate, error) {
	raw := strings.TrimSpace(env.GetString(key))
	if raw == "" {
		return candidate{source: SourceEnv}, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return candidate{}, fmt.Errorf("environment override for %s: %q is not a boolean", key, raw)
	}
	return candidate{source: SourceEnv, value: strconv.FormatBool(b), set: true}, nil
}

// ResolveAllOptions carries flag values and the loaded config file.
type ResolveAllOptions struct {
	// ConfigFlag is the --config flag value (empty if not set).
	ConfigFlag string
	// GeneratorFlag is the --generator flag value (empty if not set).
	GeneratorFlag string
	// ThemeFlag is the --theme flag value (empty if not set).
	ThemeFlag string
	// TimestampsFlag is set only when --timestamps was given explicitly.
	TimestampsFlag *bool
	// HighlightFlag is set only when highlighting was forced on or off.
	HighlightFlag *bool
	// SeedFlag is set only when --no-defaults was given.
	SeedFlag *bool
	// Config is the loaded config file; nil means no file.
	Config *Config
}

// ResolvedConfig holds every configuration value after precedence
// flag > env > config > default has been applied.
type ResolvedConfig struct {
	ConfigPath       ResolvedValue
	GeneratorPath    ResolvedValue
	Theme            ResolvedValue
	HighlightEnabled ResolvedValue
	Timestamps       ResolvedValue
	Seed             ResolvedValue
}

// Values returns all resolved values in a stable order.
func (r *ResolvedConfig) Values() []ResolvedValue {
	return []ResolvedValue{r.ConfigPath, r.GeneratorPath, r.Theme, r.HighlightEnabled, r.Timestamps, r.Seed}
}

// ResolveAll resolves every configuration value.
func ResolveAll(opts ResolveAllOptions) (*ResolvedConfig, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}
	env := newEnv()

	configPath, err := ResolveConfigPath(ResolveConfigPathOptions{FlagValue: opts.ConfigFlag})
	if err != nil {
		return nil, err
	}

	resolved := &ResolvedConfig{
		ConfigPath: ResolvedValue{
			Key:      "config",
			Value:    configPath.ConfigPath,
			Source:   configPath.Source,
			Shadowed: configPath.Shadowed,
		},
		GeneratorPath: resolve(KeyGeneratorPath,
			stringCandidate(SourceFlag, opts.GeneratorFlag),
			stringCandidate(SourceEnv, env.GetString(KeyGeneratorPath)),
			stringCandidate(SourceConfig, cfg.Generator.Path),
			stringCandidate(SourceDefault, generator.DefaultPath),
		),
		Theme: resolve(KeyTheme,
			stringCandidate(SourceFlag, opts.ThemeFlag),
			stringCandidate(SourceEnv, env.GetString(KeyTheme)),
			stringCandidate(SourceConfig, cfg.Highlight.Theme),
			stringCandidate(SourceDefault, DefaultTheme),
		),
	}

	bools := []struct {
		key  string
		flag *bool
		file *bool
		dst  *ResolvedValue
	}{
		{KeyHighlightEnabled, opts.HighlightFlag, cfg.Highlight.Enabled, &resolved.HighlightEnabled},
		{KeyTimestamps, opts.TimestampsFlag, cfg.Log.Timestamps, &resolved.Timestamps},
		{KeySeed, opts.SeedFlag, cfg.Defaults.Seed, &resolved.Seed},
	}
	for _, b := range bools {
		fromEnv, err := envBool(env, b.key)
		if err != nil {
			return nil, err
		}
		*b.dst = resolve(b.key,
			boolCandidate(SourceFlag, b.flag),
			fromEnv,
			boolCandidate(SourceConfig, b.file),
			boolCandidate(SourceDefault, boolPtr(true)),
		)
	}

	return resolved, nil
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) SGEN_CONFIG env, (3) ~/.sgen/config.yaml default.
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolveConfigPathResult, error) {
	result := ResolveConfigPathResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(EnvConfig)

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	if opts.FlagValue != "" {
		result.ConfigPath = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	} else if envValue != "" {
		result.ConfigPath = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	} else {
		result.ConfigPath = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
