package search

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the sentinel matched by every InvalidInputError via errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// ErrUnknownAlgorithm is returned when an algorithm name cannot be resolved.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// InvalidInputError reports raw sequence text that could not be normalized.
// Token holds the offending text and Position its zero-based slot in the
// comma-separated list; both are empty/-1 when the whole input was empty.
type InvalidInputError struct {
	Token    string
	Position int
	Cause    error
}

func newInvalidTokenError(token string, position int, cause error) *InvalidInputError {
	return &InvalidInputError{Token: token, Position: position, Cause: cause}
}

func newEmptyInputError() *InvalidInputError {
	return &InvalidInputError{Position: -1}
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Position < 0 {
		return "invalid input: sequence is empty"
	}
	return fmt.Sprintf("invalid input: %q at position %d is not an integer", e.Token, e.Position)
}

// Unwrap exposes the parse failure, if any.
func (e *InvalidInputError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is lets callers match any InvalidInputError against ErrInvalidInput.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
