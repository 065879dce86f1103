package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sgenkit/sgen/internal/cmdtypes"
	"github.com/sgenkit/sgen/internal/cmdutil"
	"github.com/sgenkit/sgen/internal/output"
)

// valueEntry is the structured form of one resolved value.
type valueEntry struct {
	Key      string            `json:"key" yaml:"key"`
	Value    string            `json:"value" yaml:"value"`
	Source   string            `json:"source" yaml:"source"`
	Shadowed map[string]string `json:"shadowed,omitempty" yaml:"shadowed,omitempty"`
}

// NewConfigShowCmd creates the config show command.
func NewConfigShowCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	var ff cmdutil.FormatFlags

	c := &cobra.Command{
		Use:   "show",
		Short: "Show resolved configuration values",
		Long: `Show every configuration value after precedence has been applied, with
the source it came from and any lower-precedence values it overrides.

Precedence: flag > SGEN_* environment > config file > default.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runShow(c, g, &ff)
		},
	}
	ff.AddTo(c)
	return c
}

func runShow(c *cobra.Command, g *cmdtypes.GlobalConfig, ff *cmdutil.FormatFlags) error {
	format, err := ff.Format()
	if err != nil {
		return err
	}
	if g.Resolved == nil {
		return fmt.Errorf("configuration was not resolved")
	}

	var entries []valueEntry
	for _, v := range g.Resolved.Values() {
		e := valueEntry{Key: v.Key, Value: v.Value, Source: string(v.Source)}
		if len(v.Shadowed) > 0 {
			e.Shadowed = make(map[string]string, len(v.Shadowed))
			for source, value := range v.Shadowed {
				e.Shadowed[string(source)] = value
			}
		}
		entries = append(entries, e)
	}

	if format != output.FormatTable {
		return output.WriteStructured(c.OutOrStdout(), format, entries)
	}

	tbl := output.NewTable("KEY", "VALUE", "SOURCE", "OVERRIDES")
	for _, e := range entries {
		tbl.Row(output.StyleNoun.Render(e.Key), e.Value, e.Source, formatShadowed(e.Shadowed))
	}
	_, err = fmt.Fprintln(c.OutOrStdout(), tbl.String())
	return err
}

// formatShadowed renders overridden values as "source=value" pairs.
func formatShadowed(shadowed map[string]string) string {
	parts := make([]string, 0, len(shadowed))
	for source, value := range shadowed {
		parts = append(parts, source+"="+value)
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}
