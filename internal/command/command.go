// Package command holds the unit of generation work: a resource kind, an
// input location, a template and parameter values, plus a single cached
// result.
package command

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/sgenkit/sgen/internal/kinds"
	"github.com/sgenkit/sgen/internal/params"
	"github.com/sgenkit/sgen/internal/templates"
)

// ErrUnconfigured is returned when arguments are requested before an input
// location has been chosen.
var ErrUnconfigured = errors.New("no input location selected")

// State is the lifecycle state of a Command.
type State int

const (
	// Unconfigured means no input location has been chosen.
	Unconfigured State = iota

	// Ready means the command can be generated and nothing is cached.
	Ready

	// Cached means a Result from a successful generation is held.
	Cached
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Unconfigured:
		return "unconfigured"
	case Ready:
		return "ready"
	case Cached:
		return "cached"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Result is the output of one successful generation.
type Result struct {
	// Code is the raw generated source.
	Code string

	// Styled is Code annotated for display.
	Styled string
}

// EmptyResult returns the result used when generation degrades.
func EmptyResult() *Result {
	return &Result{}
}

// IsEmpty reports whether the result carries no code.
func (r *Result) IsEmpty() bool {
	return r == nil || r.Code == ""
}

// Command is one fully specified generation request. Changing the kind,
// template or values means building a new Command; only the input location
// can change in place, and doing so drops the cached result.
type Command struct {
	id       uuid.UUID
	kind     kinds.Kind
	template templates.Template
	values   params.ValueSet

	mu     sync.Mutex
	input  string
	cached *Result
}

// New creates a Command. An empty templateName selects the kind's default
// template. input may be empty, leaving the command Unconfigured.
func New(k kinds.Kind, input, templateName string, values params.ValueSet) (*Command, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid resource kind %d", int(k))
	}
	tmpl, err := templates.Resolve(k, templateName)
	if err != nil {
		return nil, err
	}
	if values == nil {
		values = params.ValueSet{}
	}
	return &Command{
		id:       uuid.New(),
		kind:     k,
		template: tmpl,
		values:   values.Clone(),
		input:    input,
	}, nil
}

// ID uniquely identifies this command instance.
func (c *Command) ID() uuid.UUID {
	return c.id
}

// Kind returns the resource kind.
func (c *Command) Kind() kinds.Kind {
	return c.kind
}

// Template returns the chosen template.
func (c *Command) Template() templates.Template {
	return c.template
}

// Values returns a copy of the parameter values.
func (c *Command) Values() params.ValueSet {
	return c.values.Clone()
}

// Input returns the selected input location.
func (c *Command) Input() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input
}

// SetInput changes the input location and clears the cached result.
func (c *Command) SetInput(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input = path
	c.cached = nil
}

// State returns the current lifecycle state.
func (c *Command) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.input == "":
		return Unconfigured
	case c.cached != nil:
		return Cached
	default:
		return Ready
	}
}

// Cached returns the cached result, if any.
func (c *Command) Cached() (*Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cached, c.cached != nil
}

// Store caches r if input is still the command's input location. A result
// computed for an input that has since been replaced is dropped, and Store
// reports false.
func (c *Command) Store(input string, r *Result) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if input != c.input || r == nil {
		return false
	}
	c.cached = r
	return true
}

// Arguments returns the generator argument vector for the current input.
func (c *Command) Arguments() ([]string, error) {
	input := c.Input()
	if input == "" {
		return nil, ErrUnconfigured
	}
	return BuildArguments(c.kind, c.template, input, c.values), nil
}

// DefaultFileName is the suggested file name when saving generated code,
// e.g. "Generated-InterfaceBuilder.swift".
func (c *Command) DefaultFileName() string {
	return DefaultFileName(c.kind)
}

// DefaultFileName returns "Generated-<Name>.swift" for kind k, with spaces
// removed from the display name.
func DefaultFileName(k kinds.Kind) string {
	return "Generated-" + strings.ReplaceAll(k.String(), " ", "") + ".swift"
}
