// Package templates provides the per-kind template registry. Each template
// declares the parameters the generator's template of that name accepts.
package templates

import (
	"slices"

	"github.com/sgenkit/sgen/internal/kinds"
	"github.com/sgenkit/sgen/internal/params"
)

// Template is a named generation strategy within a resource kind.
type Template struct {
	// Kind is the resource kind the template belongs to.
	Kind kinds.Kind

	// Name is passed to the generator as --templateName.
	Name string

	// Params lists the declared parameters in emission order.
	Params []params.Kind

	// Default marks the kind's default template.
	Default bool
}

// Declares reports whether the template accepts parameter k.
func (t Template) Declares(k params.Kind) bool {
	return slices.Contains(t.Params, k)
}

// StringParams returns declared string-valued parameters in catalog display order.
func (t Template) StringParams() []params.Kind {
	return t.filter(params.StringKinds())
}

// BoolParams returns declared boolean-valued parameters in catalog display order.
func (t Template) BoolParams() []params.Kind {
	return t.filter(params.BoolKinds())
}

func (t Template) filter(order []params.Kind) []params.Kind {
	var out []params.Kind
	for _, k := range order {
		if t.Declares(k) {
			out = append(out, k)
		}
	}
	return out
}
