package templates

import (
	"errors"
	"fmt"

	"github.com/sgenkit/sgen/internal/kinds"
	"github.com/sgenkit/sgen/internal/params"
)

// Verify checks the registry: every kind has templates with unique names and
// exactly one default, and every declared parameter exists in the catalog
// and is declared once.
func Verify() error {
	var errs []error
	for _, k := range kinds.All() {
		list := templates[k]
		if len(list) == 0 {
			errs = append(errs, fmt.Errorf("%s: no templates", k.Token()))
			continue
		}

		defaults := 0
		names := make(map[string]bool, len(list))
		for _, t := range list {
			if t.Default {
				defaults++
			}
			if names[t.Name] {
				errs = append(errs, fmt.Errorf("%s: duplicate template %q", k.Token(), t.Name))
			}
			names[t.Name] = true
			if t.Kind != k {
				errs = append(errs, fmt.Errorf("%s/%s: registered under the wrong kind", k.Token(), t.Name))
			}
			errs = append(errs, verifyParams(t)...)
		}
		if defaults != 1 {
			errs = append(errs, fmt.Errorf("%s: %d default templates, want 1", k.Token(), defaults))
		}
	}
	return errors.Join(errs...)
}

func verifyParams(t Template) []error {
	var errs []error
	seen := make(map[params.Kind]bool, len(t.Params))
	for _, p := range t.Params {
		if _, ok := params.Lookup(p); !ok {
			errs = append(errs, fmt.Errorf("%s/%s: unknown parameter %q", t.Kind.Token(), t.Name, p))
		}
		if seen[p] {
			errs = append(errs, fmt.Errorf("%s/%s: parameter %q declared twice", t.Kind.Token(), t.Name, p))
		}
		seen[p] = true
	}
	return errs
}
