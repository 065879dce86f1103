package cmdutil

import (
	"fmt"
	"strings"

	"github.com/sgenkit/sgen/internal/command"
	oerrors "github.com/sgenkit/sgen/internal/errors"
	"github.com/sgenkit/sgen/internal/kinds"
	"github.com/sgenkit/sgen/internal/params"
	"github.com/sgenkit/sgen/internal/picker"
	"github.com/sgenkit/sgen/internal/templates"
)

// BuildCommandOpts holds the inputs for BuildCommand.
type BuildCommandOpts struct {
	// Args are the positional arguments: kind and input location.
	Args []string
	// Flags are the generation flags.
	Flags *GenerateFlags
	// Seed fills declared parameters with catalog defaults first.
	Seed bool
	// CheckInput validates the input location against the kind's document
	// shape and extensions. Without it the location is used as given.
	CheckInput bool
}

// ParseKind resolves a kind argument, returning a not-found error that lists
// the valid tokens.
func ParseKind(arg string) (kinds.Kind, error) {
	k, err := kinds.Parse(arg)
	if err != nil {
		return 0, oerrors.NewNotFoundError(
			fmt.Sprintf("unknown resource kind %q", arg),
			"",
			"Valid kinds: "+strings.Join(kinds.Tokens(), ", "),
		)
	}
	return k, nil
}

// ResolveTemplate resolves a template name for k, returning a not-found
// error that lists the valid names.
func ResolveTemplate(k kinds.Kind, name string) (templates.Template, error) {
	tmpl, err := templates.Resolve(k, name)
	if err != nil {
		return templates.Template{}, oerrors.NewNotFoundError(
			fmt.Sprintf("unknown template %q for %s", name, k),
			"",
			"Valid templates: "+strings.Join(templates.Names(k), ", "),
		)
	}
	return tmpl, nil
}

// CollectValues builds the parameter values for tmpl: catalog seeds when
// seed is set, then each values file in order, then --param assignments.
// Later sources win.
func CollectValues(k kinds.Kind, tmpl templates.Template, seed bool, files, assignments []string) (params.ValueSet, error) {
	values := params.ValueSet{}
	if seed {
		values = params.Seed(k.DefaultEnumName(), tmpl.Params)
	}

	for _, f := range files {
		fromFile, err := params.LoadFile(f)
		if err != nil {
			return nil, oerrors.NewValidationError(err.Error(), f, "", "Values files map parameter names to strings or booleans")
		}
		values = values.Overlay(fromFile)
	}

	fromArgs, err := params.ParseAssignments(assignments)
	if err != nil {
		return nil, oerrors.NewValidationError(err.Error(), "", "--param", "Run 'sgen params' to list parameters")
	}
	return values.Overlay(fromArgs), nil
}

// Undeclared returns the parameters in values that tmpl does not declare,
// in catalog order. They are kept but never emitted.
func Undeclared(tmpl templates.Template, values params.ValueSet) []params.Kind {
	var out []params.Kind
	for _, k := range params.All() {
		if _, ok := values.Get(k); ok && !tmpl.Declares(k) {
			out = append(out, k)
		}
	}
	return out
}

// BuildCommand turns positional arguments and generation flags into a
// Command.
func BuildCommand(opts BuildCommandOpts) (*command.Command, error) {
	if len(opts.Args) < 2 {
		return nil, oerrors.NewValidationError("a resource kind and an input location are required", "", "", "")
	}
	flags := opts.Flags
	if flags == nil {
		flags = &GenerateFlags{}
	}

	k, err := ParseKind(opts.Args[0])
	if err != nil {
		return nil, err
	}

	input := opts.Args[1]
	if opts.CheckInput {
		input, err = picker.Select(k.Info(), input)
		if err != nil {
			return nil, err
		}
	}

	tmpl, err := ResolveTemplate(k, flags.Template)
	if err != nil {
		return nil, err
	}

	values, err := CollectValues(k, tmpl, opts.Seed, flags.Values, flags.Params)
	if err != nil {
		return nil, err
	}

	return command.New(k, input, tmpl.Name, values)
}
