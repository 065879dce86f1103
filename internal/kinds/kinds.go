// Package kinds defines the resource kinds the generator understands.
package kinds

import (
	"fmt"
	"strings"
)

// Kind is one of the closed set of generation kinds.
type Kind int

// Resource kinds in display order.
const (
	Assets Kind = iota
	Strings
	Colors
	Fonts
	InterfaceBuilder
	JSON
	YAML
)

// DocumentShape is the kind of filesystem entry a resource kind reads.
type DocumentShape string

const (
	// ShapeFile expects a single file.
	ShapeFile DocumentShape = "file"

	// ShapeDirectory expects a directory.
	ShapeDirectory DocumentShape = "directory"
)

// Info describes a resource kind.
type Info struct {
	// Kind is the identifier.
	Kind Kind

	// Name is the display name.
	Name string

	// Token is the generator's subcommand for this kind.
	Token string

	// Shape is the document shape the input must have.
	Shape DocumentShape

	// Extensions lists acceptable input extensions without the dot.
	Extensions []string

	// DefaultEnumName seeds enumName and replaces an empty enumName.
	DefaultEnumName string
}

var registry = map[Kind]Info{
	Assets: {
		Kind:            Assets,
		Name:            "Assets",
		Token:           "xcassets",
		Shape:           ShapeDirectory,
		Extensions:      []string{"xcassets"},
		DefaultEnumName: "Asset",
	},
	Strings: {
		Kind:            Strings,
		Name:            "Strings",
		Token:           "strings",
		Shape:           ShapeFile,
		Extensions:      []string{"strings"},
		DefaultEnumName: "L10n",
	},
	Colors: {
		Kind:            Colors,
		Name:            "Colors",
		Token:           "colors",
		Shape:           ShapeFile,
		Extensions:      []string{"txt", "json", "xml", "clr"},
		DefaultEnumName: "ColorName",
	},
	Fonts: {
		Kind:            Fonts,
		Name:            "Fonts",
		Token:           "fonts",
		Shape:           ShapeDirectory,
		Extensions:      []string{"ttf", "otf"},
		DefaultEnumName: "FontFamily",
	},
	InterfaceBuilder: {
		Kind:       InterfaceBuilder,
		Name:       "Interface Builder",
		Token:      "ib",
		Shape:      ShapeFile,
		Extensions: []string{"storyboard"},
	},
	JSON: {
		Kind:            JSON,
		Name:            "JSON",
		Token:           "json",
		Shape:           ShapeFile,
		Extensions:      []string{"json"},
		DefaultEnumName: "JSONFiles",
	},
	YAML: {
		Kind:            YAML,
		Name:            "YAML",
		Token:           "yaml",
		Shape:           ShapeFile,
		Extensions:      []string{"yml"},
		DefaultEnumName: "YAMLFiles",
	},
}

// aliases maps extra lookup names to kinds.
var aliases = map[string]Kind{
	"assets":            Assets,
	"interface-builder": InterfaceBuilder,
	"interfacebuilder":  InterfaceBuilder,
	"storyboards":       InterfaceBuilder,
}

// All returns every kind in display order.
func All() []Kind {
	return []Kind{Assets, Strings, Colors, Fonts, InterfaceBuilder, JSON, YAML}
}

// Info returns the descriptor for k. It panics on values outside the closed set.
func (k Kind) Info() Info {
	info, ok := registry[k]
	if !ok {
		panic(fmt.Sprintf("kinds: invalid kind %d", int(k)))
	}
	return info
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	_, ok := registry[k]
	return ok
}

// String returns the display name.
func (k Kind) String() string {
	if info, ok := registry[k]; ok {
		return info.Name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token returns the generator's type token.
func (k Kind) Token() string {
	return k.Info().Token
}

// DefaultEnumName returns the enum name used when enumName is left empty.
func (k Kind) DefaultEnumName() string {
	return k.Info().DefaultEnumName
}

// AcceptsExtension reports whether ext (with or without the leading dot)
// is an allowed input extension. Comparison is case-insensitive.
func (i Info) AcceptsExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	for _, e := range i.Extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// Parse resolves a kind by type token, display name or alias.
func Parse(name string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if k, ok := aliases[key]; ok {
		return k, nil
	}
	for _, k := range All() {
		info := registry[k]
		if key == info.Token || key == strings.ToLower(info.Name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown resource kind %q; valid kinds: %s", name, strings.Join(Tokens(), ", "))
}

// Tokens returns the type tokens of all kinds in display order.
func Tokens() []string {
	all := All()
	out := make([]string, len(all))
	for i, k := range all {
		out[i] = registry[k].Token
	}
	return out
}
