// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/config).
package cmdtypes

import (
	"github.com/sgenkit/sgen/internal/config"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the loaded config file, empty when there is none.
	Config *config.Config

	// ConfigExists reports whether the config file was found.
	ConfigExists bool

	// Resolved holds every value after flag > env > config > default.
	Resolved *config.ResolvedConfig

	Verbose bool
}

// ConfigPath returns the resolved config file path.
func (g *GlobalConfig) ConfigPath() string {
	if g == nil || g.Resolved == nil {
		return ""
	}
	return g.Resolved.ConfigPath.Value
}

// GeneratorPath returns the resolved generator executable.
func (g *GlobalConfig) GeneratorPath() string {
	if g == nil || g.Resolved == nil {
		return ""
	}
	return g.Resolved.GeneratorPath.Value
}
