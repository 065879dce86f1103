package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/viper"
)

// Load reads the config file at path. A missing file is not an error: it
// yields an empty Config and exists=false. Environment variables are not
// applied here; Resolve layers them with flags and defaults.
func Load(path string) (cfg *Config, exists bool, err error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, false, fmt.Errorf("expanding config path: %w", err)
	}

	if _, err := os.Stat(expanded); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, false, nil
		}
		return nil, false, fmt.Errorf("checking config file: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(expanded)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, true, fmt.Errorf("reading config file: %w", err)
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, true, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, true, nil
}
