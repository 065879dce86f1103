package config

import (
	"os"
	"path/filepath"
)

// EnvConfig names the environment variable overriding the config file path.
const EnvConfig = "SGEN_CONFIG"

// Paths contains standard filesystem paths for sgen.
type Paths struct {
	// ConfigFile is the path to the config file (~/.sgen/config.yaml).
	ConfigFile string

	// HomeDir is the sgen home directory (~/.sgen).
	HomeDir string
}

// DefaultPaths returns the default paths for sgen.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	sgenHome := filepath.Join(homeDir, ".sgen")

	return &Paths{
		ConfigFile: filepath.Join(sgenHome, "config.yaml"),
		HomeDir:    sgenHome,
	}, nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// Handle ~username (not supported, return as-is)
	return path, nil
}
