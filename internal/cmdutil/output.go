package cmdutil

import (
	"errors"
	"fmt"

	"github.com/sgenkit/sgen/internal/config"
	oerrors "github.com/sgenkit/sgen/internal/errors"
	"github.com/sgenkit/sgen/internal/generator"
	"github.com/sgenkit/sgen/internal/output"
)

// PrintValidationErrors prints config validation errors one field per line
// and returns an ExitError marked as printed.
func PrintValidationErrors(path string, err error) error {
	var verrs config.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	output.Error(output.FormatFailure("config validation failed"), "file", path)
	for _, e := range verrs {
		output.Error(fmt.Sprintf("  %s: %s", e.Field, e.Message))
	}
	return &oerrors.ExitError{Err: err, Code: oerrors.ExitValidationError, Printed: true}
}

// GeneratorError converts a pipeline failure into a DetailError carrying
// ErrGenerator, with a hint for the common causes.
func GeneratorError(path string, err error) error {
	hint := ""
	switch {
	case errors.Is(err, generator.ErrLaunch):
		hint = "Install SwiftGen or point --generator (SGEN_GENERATOR) at the binary"
	case errors.Is(err, generator.ErrDecode):
		hint = "The generator wrote binary output; check the template and input"
	}
	return oerrors.NewGeneratorError("generation failed", map[string]string{"Generator": path}, hint, err)
}
