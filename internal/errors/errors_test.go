//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	all := []error{ErrValidation, ErrPermission, ErrNotFound, ErrGenerator}
	for i := range all {
		for j := range all {
			if i != j {
				assert.NotErrorIs(t, all[i], all[j])
			}
		}
	}
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "invalid value",
		Location: "/home/me/.sgen/config.yaml",
		Field:    "highlight.theme",
		Context:  map[string]string{"Theme": "neon", "Allowed": "see sgen config vet"},
		Hint:     "Pick a chroma style name",
	}

	out := detail.Error()

	assert.Contains(t, out, "Error: validation failed")
	assert.Contains(t, out, "Location: /home/me/.sgen/config.yaml")
	assert.Contains(t, out, "Field: highlight.theme")
	assert.Contains(t, out, "Theme: neon")
	assert.Contains(t, out, "invalid value")
	assert.Contains(t, out, "Hint: Pick a chroma style name")
	assert.Less(t, strings.Index(out, "Allowed:"), strings.Index(out, "Theme:"), "context keys are sorted")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("invalid value", "values.yaml", "enumName", "Use a string")

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "validation failed", detail.Type)
	assert.Equal(t, "values.yaml", detail.Location)
	assert.Equal(t, "enumName", detail.Field)
	assert.Equal(t, "Use a string", detail.Hint)
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("no such input", "/x/Colors.txt", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewGeneratorError(t *testing.T) {
	cause := errors.New("exec: no such file")
	err := NewGeneratorError("could not run swiftgen", map[string]string{"Path": "/usr/local/bin/swiftgen"}, "", cause)

	assert.ErrorIs(t, err, ErrGenerator)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "Path: /usr/local/bin/swiftgen")
	assert.Contains(t, err.Error(), "exec: no such file")
}

func TestDetailErrorOmitsBareSentinel(t *testing.T) {
	err := NewNotFoundError("no such input", "/x/Colors.txt", "")
	assert.True(t, strings.HasSuffix(err.Error(), "\n  no such input\n"), err.Error())
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrValidation, "schema check failed")

	assert.True(t, errors.Is(wrapped, ErrValidation))
	assert.Contains(t, wrapped.Error(), "schema check failed")
}
