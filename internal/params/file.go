package params

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// LoadFile reads a YAML or JSON document mapping parameter keys to values.
//
//	enumName: Palette
//	publicAccess: true
func LoadFile(path string) (ValueSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading values file: %w", err)
	}
	values, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return values, nil
}

// Decode parses a YAML or JSON values document.
func Decode(data []byte) (ValueSet, error) {
	raw := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing values: %w", err)
	}

	out := make(ValueSet, len(raw))
	for name, rv := range raw {
		k, err := Parse(name)
		if err != nil {
			return nil, err
		}

		var v Value
		switch typed := rv.(type) {
		case bool:
			v = Bool(typed)
		case string:
			v = String(typed)
		case nil:
			// "key:" with nothing after it leaves the parameter absent
			continue
		default:
			return nil, fmt.Errorf("parameter %s: unsupported value %v (%T)", k, rv, rv)
		}

		if err := out.Set(k, v); err != nil {
			return nil, err
		}
	}
	return out, nil
}
