package templates

import (
	"fmt"
	"strings"

	"github.com/sgenkit/sgen/internal/kinds"
	"github.com/sgenkit/sgen/internal/params"
)

// Parameter lists shared by several templates.
var (
	assetsSwift2Params = []params.Kind{
		params.EnumName, params.ImageAliasName, params.ColorTypeName, params.ImageTypeName,
		params.NoAllValues, params.PublicAccess,
	}
	assetsSwift3Params = []params.Kind{
		params.EnumName, params.ColorAliasName, params.ImageAliasName, params.ColorTypeName,
		params.ImageTypeName, params.NoAllValues, params.PublicAccess,
	}
	colorsLiteralParams = []params.Kind{params.EnumName, params.PublicAccess}
	colorsSwiftParams   = []params.Kind{params.EnumName, params.ColorAliasName, params.PublicAccess}
	fontsParams         = []params.Kind{params.EnumName, params.PreservePath, params.PublicAccess}
	ibParams            = []params.Kind{
		params.SceneEnumName, params.SegueEnumName, params.Module, params.IgnoreTargetModule,
		params.PublicAccess,
	}
	stringsParams = []params.Kind{params.EnumName, params.NoComments, params.PublicAccess}
	dataParams    = []params.Kind{params.EnumName, params.PublicAccess}
)

// templates is the internal registry, in listing order per kind.
var templates = map[kinds.Kind][]Template{
	kinds.Assets: {
		{Name: "swift2", Params: assetsSwift2Params},
		{Name: "swift3", Params: assetsSwift3Params},
		{Name: "swift4", Params: assetsSwift3Params, Default: true},
	},
	kinds.Strings: {
		{Name: "flat-swift2", Params: stringsParams},
		{Name: "flat-swift3", Params: stringsParams},
		{Name: "flat-swift4", Params: stringsParams},
		{Name: "structured-swift2", Params: stringsParams},
		{Name: "structured-swift3", Params: stringsParams},
		{Name: "structured-swift4", Params: stringsParams, Default: true},
	},
	kinds.Colors: {
		{Name: "literals-swift3", Params: colorsLiteralParams},
		{Name: "literals-swift4", Params: colorsLiteralParams, Default: true},
		{Name: "swift2", Params: colorsSwiftParams},
		{Name: "swift3", Params: colorsSwiftParams},
		{Name: "swift4", Params: colorsSwiftParams},
	},
	kinds.Fonts: {
		{Name: "swift2", Params: fontsParams},
		{Name: "swift3", Params: fontsParams},
		{Name: "swift4", Params: fontsParams, Default: true},
	},
	kinds.InterfaceBuilder: {
		{Name: "scenes-swift4", Params: ibParams, Default: true},
		{Name: "segues-swift4", Params: ibParams},
		{Name: "scenes-swift3", Params: ibParams},
		{Name: "segues-swift3", Params: ibParams},
	},
	kinds.JSON: {
		{Name: "runtime-swift4", Params: dataParams, Default: true},
		{Name: "inline-swift4", Params: dataParams},
		{Name: "inline-swift3", Params: dataParams},
		{Name: "runtime-swift3", Params: dataParams},
	},
	kinds.YAML: {
		{Name: "inline-swift4", Params: dataParams, Default: true},
		{Name: "inline-swift3", Params: dataParams},
	},
}

func init() {
	for k, list := range templates {
		for i := range list {
			list[i].Kind = k
		}
	}
}

// Get returns the template of kind k with the given name.
// Returns an error if the kind has no such template.
func Get(k kinds.Kind, name string) (Template, error) {
	for _, t := range templates[k] {
		if t.Name == name {
			return clone(t), nil
		}
	}
	return Template{}, fmt.Errorf("unknown template %q for %s; valid templates: %s",
		name, k.Token(), strings.Join(Names(k), ", "))
}

// List returns all templates of kind k in listing order.
func List(k kinds.Kind) []Template {
	list := templates[k]
	out := make([]Template, len(list))
	for i, t := range list {
		out[i] = clone(t)
	}
	return out
}

// GetDefault returns the default template of kind k.
func GetDefault(k kinds.Kind) Template {
	for _, t := range templates[k] {
		if t.Default {
			return clone(t)
		}
	}
	panic(fmt.Sprintf("templates: kind %s has no default template", k))
}

// Names returns all template names of kind k.
func Names(k kinds.Kind) []string {
	list := templates[k]
	out := make([]string, len(list))
	for i, t := range list {
		out[i] = t.Name
	}
	return out
}

// Resolve returns the named template, or the default template when name is empty.
func Resolve(k kinds.Kind, name string) (Template, error) {
	if name == "" {
		return GetDefault(k), nil
	}
	return Get(k, name)
}

// clone detaches the parameter slice so callers cannot edit the registry.
func clone(t Template) Template {
	t.Params = append([]params.Kind(nil), t.Params...)
	return t
}
