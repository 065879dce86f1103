package config

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaFS embed.FS

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// ThemeChecker reports whether a highlight theme exists.
type ThemeChecker func(name string) bool

// Validator validates configuration against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
	themes ThemeChecker
}

// NewValidator creates a new configuration validator. themes may be nil,
// which skips the theme name check.
func NewValidator(themes ThemeChecker) (*Validator, error) {
	ctx := cuecontext.New()

	schemaData, err := schemaFS.ReadFile("schema.cue")
	if err != nil {
		return nil, fmt.Errorf("reading embedded schema: %w", err)
	}

	compiled := ctx.CompileBytes(schemaData, cue.Filename("schema.cue"))
	if compiled.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", compiled.Err())
	}

	def := compiled.LookupPath(cue.ParsePath("#Config"))
	if !def.Exists() {
		return nil, fmt.Errorf("schema has no #Config definition")
	}

	return &Validator{
		ctx:    ctx,
		schema: def,
		themes: themes,
	}, nil
}

// Validate validates a loaded configuration.
func (v *Validator) Validate(cfg *Config) error {
	if err := v.check(v.ctx.Encode(cfg)); err != nil {
		return err
	}
	return v.checkTheme(cfg.Highlight.Theme)
}

// ValidateFile validates the raw content of a configuration file, so that
// unknown keys are reported rather than dropped during decoding.
func (v *Validator) ValidateFile(path string) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	return v.ValidateBytes(data)
}

// ValidateBytes validates YAML configuration content.
func (v *Validator) ValidateBytes(data []byte) error {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return ValidationErrors{{Field: "(file)", Message: fmt.Sprintf("invalid YAML: %v", err)}}
	}
	if raw == nil {
		raw = map[string]interface{}{}
	}

	if err := v.check(v.ctx.Encode(raw)); err != nil {
		return err
	}

	if hl, ok := raw["highlight"].(map[string]interface{}); ok {
		if theme, ok := hl["theme"].(string); ok {
			return v.checkTheme(theme)
		}
	}
	return nil
}

func (v *Validator) check(value cue.Value) error {
	if value.Err() != nil {
		return fmt.Errorf("encoding config: %w", value.Err())
	}

	unified := v.schema.Unify(value)
	err := unified.Validate(cue.Concrete(true))
	if err == nil {
		return nil
	}

	var errs ValidationErrors
	for _, e := range cueerrors.Errors(err) {
		field := strings.Join(e.Path(), ".")
		if field == "" {
			field = "(root)"
		}
		format, args := e.Msg()
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}
	if len(errs) == 0 {
		return ValidationErrors{{Field: "(root)", Message: err.Error()}}
	}
	return errs
}

func (v *Validator) checkTheme(theme string) error {
	if theme == "" || v.themes == nil || v.themes(theme) {
		return nil
	}
	return ValidationErrors{{
		Field:   KeyTheme,
		Message: fmt.Sprintf("unknown highlight theme %q", theme),
	}}
}
