package sim

import (
	"errors"
	"fmt"
)

// Sentinel errors for load-time configuration defects.
var (
	ErrInvalidLayout     = errors.New("invalid level layout")
	ErrInvalidBank       = errors.New("invalid question bank")
	ErrInsufficientCells = errors.New("not enough cells for spawn rules")
)

// ValidationError describes a configuration defect detected at load time.
// These are fatal: the level or bank cannot be played as given.
type ValidationError struct {
	Code    string
	Message string
	kind    error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap lets errors.Is match the sentinel for the error's category.
func (e ValidationError) Unwrap() error {
	return e.kind
}

func layoutError(code, format string, args ...any) error {
	return ValidationError{Code: code, Message: fmt.Sprintf(format, args...), kind: ErrInvalidLayout}
}

func bankError(code, format string, args ...any) error {
	return ValidationError{Code: code, Message: fmt.Sprintf(format, args...), kind: ErrInvalidBank}
}

func capacityError(format string, args ...any) error {
	return ValidationError{Code: "SPAWN_CAPACITY", Message: fmt.Sprintf(format, args...), kind: ErrInsufficientCells}
}

// NewValidationError builds a ValidationError that matches kind with errors.Is.
// Loaders outside this package use it to report their own codes.
func NewValidationError(kind error, code, format string, args ...any) error {
	return ValidationError{Code: code, Message: fmt.Sprintf(format, args...), kind: kind}
}
