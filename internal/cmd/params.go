package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sgenkit/sgen/internal/cmdtypes"
	"github.com/sgenkit/sgen/internal/cmdutil"
	"github.com/sgenkit/sgen/internal/output"
	"github.com/sgenkit/sgen/internal/params"
)

// paramEntry is the structured form of a catalog listing.
type paramEntry struct {
	Name    string `json:"name" yaml:"name"`
	Type    string `json:"type" yaml:"type"`
	Label   string `json:"label" yaml:"label"`
	Default string `json:"default,omitempty" yaml:"default,omitempty"`
}

// NewParamsCmd creates the params command.
func NewParamsCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	var ff cmdutil.FormatFlags

	c := &cobra.Command{
		Use:   "params",
		Short: "List the parameter catalog",
		Long: `List every parameter the generator templates accept: string-valued
parameters first, then boolean flags.

Pass them to args and generate as --param key=value, or --param key for
booleans. enumName defaults to the kind's enum name.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runParams(c, &ff)
		},
	}
	ff.AddTo(c)
	return c
}

func runParams(c *cobra.Command, ff *cmdutil.FormatFlags) error {
	format, err := ff.Format()
	if err != nil {
		return err
	}

	var entries []paramEntry
	for _, k := range params.All() {
		spec := params.MustLookup(k)
		typ := "string"
		if spec.IsBool {
			typ = "bool"
		}
		entries = append(entries, paramEntry{
			Name:    k.String(),
			Type:    typ,
			Label:   spec.Label,
			Default: spec.Default,
		})
	}

	if format != output.FormatTable {
		return output.WriteStructured(c.OutOrStdout(), format, entries)
	}

	tbl := output.NewTable("PARAMETER", "TYPE", "LABEL", "DEFAULT")
	for _, e := range entries {
		tbl.Row(output.StyleNoun.Render(e.Name), e.Type, e.Label, e.Default)
	}
	_, err = fmt.Fprintln(c.OutOrStdout(), tbl.String())
	return err
}
