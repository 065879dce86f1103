package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sgenkit/sgen/internal/cmdtypes"
	"github.com/sgenkit/sgen/internal/cmdutil"
	"github.com/sgenkit/sgen/internal/output"
	"github.com/sgenkit/sgen/internal/version"
)

// versionEntry is the structured form of the version output.
type versionEntry struct {
	version.Info `yaml:",inline"`
	Generator    version.GeneratorInfo `json:"generator" yaml:"generator"`
}

// NewVersionCmd creates the version command.
func NewVersionCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	var ff cmdutil.FormatFlags

	c := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show sgen version information.

Displays:
  - sgen version, commit, and build date
  - the configured generator binary and its version`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVersion(c, g, &ff)
		},
	}
	ff.AddTo(c)
	return c
}

func runVersion(c *cobra.Command, g *cmdtypes.GlobalConfig, ff *cmdutil.FormatFlags) error {
	format, err := ff.Format()
	if err != nil {
		return err
	}

	info := version.Get()
	gen := version.DetectGenerator(c.Context(), g.GeneratorPath())

	if format != output.FormatTable {
		return output.WriteStructured(c.OutOrStdout(), format, versionEntry{Info: info, Generator: gen})
	}
	_, err = fmt.Fprintln(c.OutOrStdout(), version.FullVersionString(info, gen))
	return err
}
