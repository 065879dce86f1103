// Package cmdutil provides shared command utilities: flag groups, Command
// construction from arguments, and error reporting helpers.
package cmdutil

import (
	"github.com/spf13/cobra"

	"github.com/sgenkit/sgen/internal/output"
)

// GenerateFlags holds flags common to commands that build a generation
// Command (args, generate).
type GenerateFlags struct {
	Template   string
	Params     []string
	Values     []string
	NoDefaults bool
}

// AddTo registers the generation flags on the given cobra command.
func (f *GenerateFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Template, "template", "t", "",
		"Template name (default: the kind's default template)")
	cmd.Flags().StringArrayVarP(&f.Params, "param", "p", nil,
		"Parameter as key=value, or a bare key for booleans (can be repeated)")
	cmd.Flags().StringArrayVarP(&f.Values, "values", "f", nil,
		"YAML or JSON file of parameter values (can be repeated)")
	cmd.Flags().BoolVar(&f.NoDefaults, "no-defaults", false,
		"Do not seed parameters with catalog defaults")
}

// FormatFlags holds the output format flag for listing commands.
type FormatFlags struct {
	Output string
}

// AddTo registers the format flag on the given cobra command.
func (f *FormatFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Output, "output", "o", "table",
		"Output format: table, yaml, json")
}

// Format parses the flag value.
func (f *FormatFlags) Format() (output.Format, error) {
	return output.ParseFormat(f.Output)
}
