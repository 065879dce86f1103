package cmdutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgenkit/sgen/internal/config"
	oerrors "github.com/sgenkit/sgen/internal/errors"
	"github.com/sgenkit/sgen/internal/generator"
)

func TestPrintValidationErrors(t *testing.T) {
	verrs := config.ValidationErrors{{Field: "highlight.theme", Message: "unknown"}}

	err := PrintValidationErrors("/x/config.yaml", verrs)
	var exitErr *oerrors.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.True(t, exitErr.Printed)
	assert.Equal(t, oerrors.ExitValidationError, exitErr.Code)

	other := errors.New("io")
	assert.Same(t, other, PrintValidationErrors("/x/config.yaml", other))
}

func TestGeneratorError(t *testing.T) {
	launch := fmt.Errorf("%w: /nope: exec failed", generator.ErrLaunch)
	err := GeneratorError("/nope", launch)

	assert.ErrorIs(t, err, oerrors.ErrGenerator)
	assert.ErrorIs(t, err, generator.ErrLaunch)
	assert.Equal(t, oerrors.ExitGeneratorError, oerrors.ExitCodeFromError(err))
	assert.Contains(t, err.Error(), "Install SwiftGen")
}
