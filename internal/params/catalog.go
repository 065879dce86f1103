// Package params provides the parameter catalog and parameter value sets
// passed to generator templates.
package params

import (
	"fmt"
	"strings"
)

// Kind identifies a template parameter. The string value is the key the
// generator expects after --param.
type Kind string

// Parameter kinds known to the generator.
const (
	EnumName           Kind = "enumName"
	ColorAliasName     Kind = "colorAliasName"
	ImageAliasName     Kind = "imageAliasName"
	ColorTypeName      Kind = "colorTypeName"
	ImageTypeName      Kind = "imageTypeName"
	SceneEnumName      Kind = "sceneEnumName"
	SegueEnumName      Kind = "segueEnumName"
	NoAllValues        Kind = "noAllValues"
	PreservePath       Kind = "preservePath"
	Module             Kind = "module"
	IgnoreTargetModule Kind = "ignoreTargetModule"
	PublicAccess       Kind = "publicAccess"
	NoComments         Kind = "noComments"
)

// Spec describes a parameter kind.
type Spec struct {
	// Kind is the catalog identifier.
	Kind Kind

	// IsBool is true for flag-style parameters emitted without a value.
	IsBool bool

	// Default is the value a form field starts with. Empty when the
	// parameter has no catalog default.
	Default string

	// Label is the human-readable name.
	Label string
}

// HasDefault reports whether the catalog defines a default value.
func (s Spec) HasDefault() bool {
	return s.Default != ""
}

// catalog is the internal registry of parameter kinds.
var catalog = map[Kind]Spec{
	EnumName:           {Kind: EnumName, Label: "Enum class name"},
	ColorAliasName:     {Kind: ColorAliasName, Default: "Color", Label: "Color alias name"},
	ImageAliasName:     {Kind: ImageAliasName, Default: "Image", Label: "Image alias name"},
	ColorTypeName:      {Kind: ColorTypeName, Default: "ColorAsset", Label: "Color type name"},
	ImageTypeName:      {Kind: ImageTypeName, Default: "ImageAsset", Label: "Image type name"},
	SceneEnumName:      {Kind: SceneEnumName, Default: "StoryboardScene", Label: "Scene enum name"},
	SegueEnumName:      {Kind: SegueEnumName, Default: "StoryboardSegue", Label: "Segue enum name"},
	NoAllValues:        {Kind: NoAllValues, IsBool: true, Label: "No all values"},
	PreservePath:       {Kind: PreservePath, IsBool: true, Label: "Preserve path"},
	Module:             {Kind: Module, IsBool: true, Label: "Module"},
	IgnoreTargetModule: {Kind: IgnoreTargetModule, IsBool: true, Label: "Ignore target module"},
	PublicAccess:       {Kind: PublicAccess, IsBool: true, Label: "Public access"},
	NoComments:         {Kind: NoComments, IsBool: true, Label: "No comments"},
}

// String-valued kinds in display order.
var stringKinds = []Kind{
	EnumName,
	ColorAliasName,
	ImageAliasName,
	ColorTypeName,
	ImageTypeName,
	SceneEnumName,
	SegueEnumName,
}

// Boolean-valued kinds in display order.
var boolKinds = []Kind{
	PreservePath,
	Module,
	IgnoreTargetModule,
	PublicAccess,
	NoAllValues,
	NoComments,
}

// Lookup returns the spec for a kind.
func Lookup(k Kind) (Spec, bool) {
	s, ok := catalog[k]
	return s, ok
}

// MustLookup returns the spec for a kind and panics if it is unknown.
// Only use it with the package constants.
func MustLookup(k Kind) Spec {
	s, ok := catalog[k]
	if !ok {
		panic(fmt.Sprintf("params: unknown parameter kind %q", k))
	}
	return s
}

// IsBool reports whether k is a boolean-valued kind. Unknown kinds are not.
func (k Kind) IsBool() bool {
	return catalog[k].IsBool
}

// Label returns the display label, or the raw key for unknown kinds.
func (k Kind) Label() string {
	if s, ok := catalog[k]; ok {
		return s.Label
	}
	return string(k)
}

// String returns the generator key.
func (k Kind) String() string {
	return string(k)
}

// StringKinds returns all string-valued kinds in their fixed order.
func StringKinds() []Kind {
	return append([]Kind(nil), stringKinds...)
}

// BoolKinds returns all boolean-valued kinds in their fixed order.
func BoolKinds() []Kind {
	return append([]Kind(nil), boolKinds...)
}

// All returns string-valued kinds followed by boolean-valued kinds.
func All() []Kind {
	all := make([]Kind, 0, len(stringKinds)+len(boolKinds))
	all = append(all, stringKinds...)
	return append(all, boolKinds...)
}

// Parse resolves a generator key to a Kind. Matching is case-insensitive
// so "publicaccess" and "publicAccess" are the same key.
func Parse(name string) (Kind, error) {
	name = strings.TrimSpace(name)
	for k := range catalog {
		if strings.EqualFold(string(k), name) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown parameter %q; valid parameters: %s", name, strings.Join(keys(All()), ", "))
}

func keys(kinds []Kind) []string {
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out
}
