package params

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is a concrete parameter value, either text or a boolean.
type Value struct {
	isBool bool
	text   string
	flag   bool
}

// String returns a string-valued Value.
func String(s string) Value {
	return Value{text: s}
}

// Bool returns a boolean-valued Value.
func Bool(b bool) Value {
	return Value{isBool: true, flag: b}
}

// IsBool reports whether the value holds a boolean.
func (v Value) IsBool() bool {
	return v.isBool
}

// Text returns the string payload. ok is false for boolean values.
func (v Value) Text() (s string, ok bool) {
	return v.text, !v.isBool
}

// Flag returns the boolean payload. ok is false for string values.
func (v Value) Flag() (b bool, ok bool) {
	return v.flag, v.isBool
}

// String renders the value the way it appears after "key=".
func (v Value) String() string {
	if v.isBool {
		return strconv.FormatBool(v.flag)
	}
	return v.text
}

// ValueSet is a sparse mapping from parameter kind to value. A kind missing
// from the set is absent and never emitted; it does not fall back to the
// catalog default.
type ValueSet map[Kind]Value

// Set stores v under k after checking it against the catalog.
func (s ValueSet) Set(k Kind, v Value) error {
	spec, ok := Lookup(k)
	if !ok {
		return fmt.Errorf("unknown parameter %q", k)
	}
	if spec.IsBool != v.IsBool() {
		if spec.IsBool {
			return fmt.Errorf("parameter %s is boolean-valued, got text %q", k, v.text)
		}
		return fmt.Errorf("parameter %s is string-valued, got boolean %t", k, v.flag)
	}
	s[k] = v
	return nil
}

// SetString stores a string value.
func (s ValueSet) SetString(k Kind, text string) error {
	return s.Set(k, String(text))
}

// SetBool stores a boolean value.
func (s ValueSet) SetBool(k Kind, b bool) error {
	return s.Set(k, Bool(b))
}

// Get returns the value stored for k.
func (s ValueSet) Get(k Kind) (Value, bool) {
	v, ok := s[k]
	return v, ok
}

// Clone returns a copy that can be modified independently.
func (s ValueSet) Clone() ValueSet {
	out := make(ValueSet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Overlay returns a copy of s with every entry of other applied on top.
func (s ValueSet) Overlay(other ValueSet) ValueSet {
	out := s.Clone()
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Seed returns the values a fresh form starts with for the declared
// parameters: enumName gets defaultEnumName, other string kinds get their
// catalog default and boolean kinds start false.
func Seed(defaultEnumName string, declared []Kind) ValueSet {
	out := make(ValueSet, len(declared))
	for _, k := range declared {
		spec, ok := Lookup(k)
		if !ok {
			continue
		}
		switch {
		case spec.IsBool:
			out[k] = Bool(false)
		case k == EnumName:
			out[k] = String(defaultEnumName)
		default:
			out[k] = String(spec.Default)
		}
	}
	return out
}

// ParseAssignment parses a "key=value" or bare "key" argument.
//
// Boolean kinds accept a bare key (true) or any strconv.ParseBool value.
// String kinds require "=", though the value may be empty.
func ParseAssignment(arg string) (Kind, Value, error) {
	name, raw, hasValue := strings.Cut(arg, "=")
	k, err := Parse(name)
	if err != nil {
		return "", Value{}, err
	}

	if k.IsBool() {
		if !hasValue {
			return k, Bool(true), nil
		}
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return "", Value{}, fmt.Errorf("parameter %s expects a boolean, got %q", k, raw)
		}
		return k, Bool(b), nil
	}

	if !hasValue {
		return "", Value{}, fmt.Errorf("parameter %s requires a value (%s=<value>)", k, k)
	}
	return k, String(raw), nil
}

// ParseAssignments parses a list of --param arguments into a ValueSet.
// Later assignments to the same key win.
func ParseAssignments(args []string) (ValueSet, error) {
	out := make(ValueSet, len(args))
	for _, arg := range args {
		k, v, err := ParseAssignment(arg)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}
