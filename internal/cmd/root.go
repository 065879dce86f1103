// Package cmd provides CLI command implementations.
package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	cmdconfig "github.com/sgenkit/sgen/internal/cmd/config"
	"github.com/sgenkit/sgen/internal/cmdtypes"
	"github.com/sgenkit/sgen/internal/config"
	"github.com/sgenkit/sgen/internal/output"
)

// rootFlags holds the global flag values.
type rootFlags struct {
	config     string
	generator  string
	theme      string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for the sgen CLI.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	g := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "sgen",
		Short: "Front-end for the SwiftGen code generator",
		Long: `sgen drives SwiftGen: pick a resource kind and an input, choose a template,
fill in the parameters it declares, and get Swift source back.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd, flags, g)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: SGEN_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&flags.generator, "generator", "", "Path to the swiftgen binary (env: SGEN_GENERATOR)")
	rootCmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "Highlight theme (env: SGEN_THEME)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewKindsCmd(g))
	rootCmd.AddCommand(NewTemplatesCmd(g))
	rootCmd.AddCommand(NewParamsCmd(g))
	rootCmd.AddCommand(NewArgsCmd(g))
	rootCmd.AddCommand(NewGenerateCmd(g))
	rootCmd.AddCommand(cmdconfig.NewConfigCmd(g))
	rootCmd.AddCommand(NewVersionCmd(g))

	return rootCmd
}

// initializeGlobals loads configuration, resolves every value and sets up
// logging. A broken config file does not stop commands that can run on
// defaults; `sgen config vet` reports it.
func initializeGlobals(cmd *cobra.Command, flags *rootFlags, g *cmdtypes.GlobalConfig) error {
	pathResult, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{FlagValue: flags.config})
	if err != nil {
		return err
	}

	cfg, exists, err := config.Load(pathResult.ConfigPath)
	if err != nil {
		output.Debug("config load error", "error", err)
		cfg = &config.Config{}
	}

	resolved, err := config.ResolveAll(config.ResolveAllOptions{
		ConfigFlag:     flags.config,
		GeneratorFlag:  flags.generator,
		ThemeFlag:      flags.theme,
		TimestampsFlag: changedBool(cmd, "timestamps", false),
		HighlightFlag:  changedBool(cmd, "plain", true),
		SeedFlag:       changedBool(cmd, "no-defaults", true),
		Config:         cfg,
	})
	if err != nil {
		return err
	}

	g.Config = cfg
	g.ConfigExists = exists
	g.Resolved = resolved
	g.Verbose = flags.verbose

	output.SetupLogging(output.LogConfig{
		Verbose:    flags.verbose,
		Timestamps: output.BoolPtr(resolved.Timestamps.Bool()),
	})

	if flags.verbose {
		config.LogResolvedValues(resolved.Values())
	}
	return nil
}

// changedBool returns the value of a boolean flag only when the user set it,
// negated when invert is set (for --plain and --no-defaults).
func changedBool(cmd *cobra.Command, name string, invert bool) *bool {
	f := cmd.Flags().Lookup(name)
	if f == nil || !f.Changed {
		return nil
	}
	b, err := strconv.ParseBool(f.Value.String())
	if err != nil {
		return nil
	}
	if invert {
		b = !b
	}
	return &b
}
