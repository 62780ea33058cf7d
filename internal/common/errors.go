package common

import (
	"errors"
	"fmt"
)

// WrapError wraps an error with additional context information
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// WrapErrorf wraps an error with formatted context information
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// NewError creates a new error with a formatted message
func NewError(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// ValidationError represents validation errors with field-specific information
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s': %s (value: %v)", e.Field, e.Message, e.Value)
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

const bytesPerMB = 1024.0 * 1024.0

// FileTooLargeError is returned when a read would exceed the size ceiling.
// Its message is meant to be shown to the end user verbatim.
type FileTooLargeError struct {
	Path     string
	Size     int64
	MaxBytes int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("File too large (%.1f MB). Maximum size is %.0f MB. Open a smaller file or use another tool.",
		float64(e.Size)/bytesPerMB, float64(e.MaxBytes)/bytesPerMB)
}

// NewFileTooLargeError creates a new size-limit error
func NewFileTooLargeError(path string, size, maxBytes int64) *FileTooLargeError {
	return &FileTooLargeError{
		Path:     path,
		Size:     size,
		MaxBytes: maxBytes,
	}
}

// ParseError reports that text could not be parsed as the given dialect.
type ParseError struct {
	Dialect string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Dialect, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new parse error for dialect
func NewParseError(dialect string, err error) *ParseError {
	return &ParseError{
		Dialect: dialect,
		Err:     err,
	}
}

// IsFileTooLarge reports whether err is, or wraps, a FileTooLargeError
func IsFileTooLarge(err error) bool {
	var target *FileTooLargeError
	return errors.As(err, &target)
}

// IsParseError reports whether err is, or wraps, a ParseError
func IsParseError(err error) bool {
	var target *ParseError
	return errors.As(err, &target)
}

// GetRootCause returns the root cause of an error by unwrapping all wrapped errors
func GetRootCause(err error) error {
	for {
		wrapped := errors.Unwrap(err)
		if wrapped == nil {
			return err
		}
		err = wrapped
	}
}
