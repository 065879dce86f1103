//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"explicit exit error", NewExitError(errors.New("x"), 42), 42},
		{"wrapped exit error", fmt.Errorf("ctx: %w", NewExitError(errors.New("x"), ExitNotFound)), ExitNotFound},
		{"validation", NewValidationError("bad", "", "", ""), ExitValidationError},
		{"permission", Wrap(ErrPermission, "cannot write"), ExitPermissionDenied},
		{"not found", NewNotFoundError("missing", "", ""), ExitNotFound},
		{"generator", NewGeneratorError("failed", nil, "", errors.New("boom")), ExitGeneratorError},
		{"other", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitError(t *testing.T) {
	inner := errors.New("inner")
	err := NewExitError(inner, ExitValidationError)

	assert.Equal(t, "inner", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.False(t, err.Printed)
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Generator Error", ExitCodeName(ExitGeneratorError))
	assert.Equal(t, "Not Found", ExitCodeName(ExitNotFound))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}
