package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sgenkit/sgen/internal/cmdtypes"
	"github.com/sgenkit/sgen/internal/config"
	oerrors "github.com/sgenkit/sgen/internal/errors"
	"github.com/sgenkit/sgen/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		Long: `Create the sgen configuration file with default values.

The file is created at ~/.sgen/config.yaml unless --config or SGEN_CONFIG
names another location.

Examples:
  # Initialize configuration
  sgen config init

  # Overwrite existing configuration
  sgen config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, g, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runInit(c *cobra.Command, g *cmdtypes.GlobalConfig, force bool) error {
	path, err := config.ExpandPath(g.ConfigPath())
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil && !force {
		return oerrors.NewValidationError("configuration already exists", path, "",
			"Use --force to overwrite existing configuration.")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return oerrors.Wrap(oerrors.ErrPermission, "could not create "+filepath.Dir(path))
	}

	data, err := config.Marshal(config.DefaultConfig())
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return oerrors.Wrap(oerrors.ErrPermission, "could not write "+path)
	}

	output.Debug("config written", "path", path, "bytes", len(data))
	_, err = fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Configuration initialized at "+path))
	if err == nil {
		_, err = fmt.Fprintln(c.OutOrStdout(), "Validate with: sgen config vet")
	}
	return err
}
