// Package errors defines the configuration error types reported by searchviz
// and the remediation hints the CLI prints for them.
package errors

import (
	stdErrors "errors"
	"fmt"
)

// ParseError reports a config.yaml that could not be read or decoded.
// Line is zero when the decoder gave no position.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError wraps a read or YAML decode failure for path.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError names the first config key that failed validation, using
// its dotted YAML path such as settings.step_delay or history.limit.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError builds a ValidationError for the given YAML key.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

var fieldHints = map[string]string{
	"version":             `Set version to a semantic version such as "1.0".`,
	"settings.algorithm":  "Set settings.algorithm to linear or binary.",
	"settings.step_delay": "Set settings.step_delay to a duration between 0s and 10s, e.g. 250ms.",
	"settings.log_level":  "Set settings.log_level to debug, info, warn or error.",
	"history.path":        "Set history.path to a writable file, or set history.enabled to false.",
	"history.limit":       "Set history.limit to a value between 1 and 1000.",
}

// Suggestion returns a user-facing hint for a configuration error, or an
// empty string when err carries neither error type.
func Suggestion(err error) string {
	var ve *ValidationError
	if stdErrors.As(err, &ve) {
		if hint, ok := fieldHints[ve.Field]; ok {
			return hint
		}
		return fmt.Sprintf("Fix %s in the configuration file.", ve.Field)
	}

	var pe *ParseError
	if stdErrors.As(err, &pe) {
		if pe.Line > 0 {
			return fmt.Sprintf("Check the YAML syntax near line %d of %s.", pe.Line, pe.Path)
		}
		return fmt.Sprintf("Make sure %s exists and is valid YAML, or pass --config with another path.", pe.Path)
	}
	return ""
}
