package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sgenkit/sgen/internal/cmdtypes"
	"github.com/sgenkit/sgen/internal/cmdutil"
	"github.com/sgenkit/sgen/internal/config"
	oerrors "github.com/sgenkit/sgen/internal/errors"
	"github.com/sgenkit/sgen/internal/highlight"
	"github.com/sgenkit/sgen/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the configuration file",
		Long: `Validate the sgen configuration file against the internal schema.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is valid YAML
  3. Only known keys are present and values have the right types
  4. The highlight theme exists

The config path is resolved using precedence:
  --config flag > SGEN_CONFIG env > ~/.sgen/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, g)
		},
	}
}

func runVet(c *cobra.Command, g *cmdtypes.GlobalConfig) error {
	path, err := config.ExpandPath(g.ConfigPath())
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	if !g.ConfigExists {
		return oerrors.NewNotFoundError("configuration file not found", path,
			"Run 'sgen config init' to create default configuration")
	}

	validator, err := config.NewValidator(highlight.IsTheme)
	if err != nil {
		return fmt.Errorf("creating validator: %w", err)
	}

	if err := validator.ValidateFile(path); err != nil {
		return cmdutil.PrintValidationErrors(path, err)
	}

	_, err = fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file is valid: "+path))
	return err
}
