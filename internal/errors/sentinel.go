package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid user input or configuration.
	ErrValidation = errors.New("validation error")

	// ErrPermission indicates insufficient permissions.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a kind, template, file or directory was not found.
	ErrNotFound = errors.New("not found")

	// ErrGenerator indicates the generator could not be run or produced
	// unusable output.
	ErrGenerator = errors.New("generator failed")
)
