package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sgenkit/sgen/internal/cmdtypes"
	"github.com/sgenkit/sgen/internal/cmdutil"
	"github.com/sgenkit/sgen/internal/output"
	"github.com/sgenkit/sgen/internal/params"
	"github.com/sgenkit/sgen/internal/templates"
)

// templateEntry is the structured form of a template listing.
type templateEntry struct {
	Name    string   `json:"name" yaml:"name"`
	Default bool     `json:"default" yaml:"default"`
	Params  []string `json:"params" yaml:"params"`
}

// NewTemplatesCmd creates the templates command.
func NewTemplatesCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	var ff cmdutil.FormatFlags

	c := &cobra.Command{
		Use:   "templates <kind>",
		Short: "List the templates of a resource kind",
		Long: `List the templates of a resource kind with the parameters each declares,
in the order they are passed to the generator.

Examples:
  sgen templates xcassets
  sgen templates ib -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runTemplates(c, &ff, args[0])
		},
	}
	ff.AddTo(c)
	return c
}

func runTemplates(c *cobra.Command, ff *cmdutil.FormatFlags, kindArg string) error {
	format, err := ff.Format()
	if err != nil {
		return err
	}
	k, err := cmdutil.ParseKind(kindArg)
	if err != nil {
		return err
	}

	list := templates.List(k)
	entries := make([]templateEntry, 0, len(list))
	for _, t := range list {
		entries = append(entries, templateEntry{
			Name:    t.Name,
			Default: t.Default,
			Params:  paramNames(t.Params),
		})
	}

	if format != output.FormatTable {
		return output.WriteStructured(c.OutOrStdout(), format, entries)
	}

	tbl := output.NewTable("TEMPLATE", "PARAMETERS")
	for _, e := range entries {
		tbl.Row(output.FormatDefault(e.Name, e.Default), strings.Join(e.Params, ", "))
	}
	_, err = fmt.Fprintln(c.OutOrStdout(), tbl.String())
	return err
}

func paramNames(ks []params.Kind) []string {
	out := make([]string, len(ks))
	for i, k := range ks {
		out[i] = k.String()
	}
	return out
}
