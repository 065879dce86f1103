package command

import (
	"strings"

	"github.com/sgenkit/sgen/internal/kinds"
	"github.com/sgenkit/sgen/internal/params"
	"github.com/sgenkit/sgen/internal/templates"
)

// Generator flag names.
const (
	FlagTemplateName = "--templateName"
	FlagParam        = "--param"
	FlagOutput       = "--output"
)

// BuildArguments returns the generator argument vector:
//
//	<token> <input> --templateName <name> [--param key[=value]]...
//
// Parameters are emitted in the template's declared order and only when
// present in values. Values for parameters the template does not declare
// are ignored.
func BuildArguments(k kinds.Kind, tmpl templates.Template, input string, values params.ValueSet) []string {
	args := []string{k.Token(), input, FlagTemplateName, tmpl.Name}
	return append(args, ParamArguments(k, tmpl, values)...)
}

// ParamArguments returns only the --param pairs of BuildArguments.
func ParamArguments(k kinds.Kind, tmpl templates.Template, values params.ValueSet) []string {
	var args []string
	for _, p := range tmpl.Params {
		v, ok := values.Get(p)
		if !ok {
			continue
		}
		if arg, ok := paramArgument(k, p, v); ok {
			args = append(args, FlagParam, arg)
		}
	}
	return args
}

// paramArgument renders one parameter, or reports false when it is omitted.
func paramArgument(k kinds.Kind, p params.Kind, v params.Value) (string, bool) {
	if p.IsBool() {
		if b, ok := v.Flag(); ok && b {
			return p.String(), true
		}
		return "", false
	}

	text, ok := v.Text()
	if !ok {
		return "", false
	}
	if strings.TrimSpace(text) == "" {
		if p != params.EnumName {
			return "", false
		}
		text = k.DefaultEnumName()
		if text == "" {
			return "", false
		}
	}
	return p.String() + "=" + text, true
}

// WithOutput appends --output <path> to args without modifying args.
func WithOutput(args []string, path string) []string {
	out := make([]string, 0, len(args)+2)
	out = append(out, args...)
	return append(out, FlagOutput, path)
}
