package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sgenkit/sgen/internal/cmdtypes"
	"github.com/sgenkit/sgen/internal/cmdutil"
	"github.com/sgenkit/sgen/internal/kinds"
	"github.com/sgenkit/sgen/internal/output"
	"github.com/sgenkit/sgen/internal/templates"
)

// kindEntry is the structured form of a resource kind listing.
type kindEntry struct {
	Name            string   `json:"name" yaml:"name"`
	Token           string   `json:"token" yaml:"token"`
	Shape           string   `json:"shape" yaml:"shape"`
	Extensions      []string `json:"extensions" yaml:"extensions"`
	DefaultEnumName string   `json:"defaultEnumName,omitempty" yaml:"defaultEnumName,omitempty"`
	DefaultTemplate string   `json:"defaultTemplate" yaml:"defaultTemplate"`
}

// NewKindsCmd creates the kinds command.
func NewKindsCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	var ff cmdutil.FormatFlags

	c := &cobra.Command{
		Use:   "kinds",
		Short: "List resource kinds",
		Long: `List the resource kinds the generator understands.

For each kind: the generator token, whether it reads a file or a directory,
the accepted extensions, the enum name seeded by default and the default
template.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runKinds(c, &ff)
		},
	}
	ff.AddTo(c)
	return c
}

func runKinds(c *cobra.Command, ff *cmdutil.FormatFlags) error {
	format, err := ff.Format()
	if err != nil {
		return err
	}

	entries := make([]kindEntry, 0, len(kinds.All()))
	for _, k := range kinds.All() {
		info := k.Info()
		entries = append(entries, kindEntry{
			Name:            info.Name,
			Token:           info.Token,
			Shape:           string(info.Shape),
			Extensions:      info.Extensions,
			DefaultEnumName: info.DefaultEnumName,
			DefaultTemplate: templates.GetDefault(k).Name,
		})
	}

	if format != output.FormatTable {
		return output.WriteStructured(c.OutOrStdout(), format, entries)
	}

	tbl := output.NewTable("KIND", "TOKEN", "SHAPE", "EXTENSIONS", "ENUM", "TEMPLATE")
	for _, e := range entries {
		tbl.Row(e.Name, output.StyleNoun.Render(e.Token), e.Shape,
			strings.Join(e.Extensions, ", "), e.DefaultEnumName, e.DefaultTemplate)
	}
	_, err = fmt.Fprintln(c.OutOrStdout(), tbl.String())
	return err
}
