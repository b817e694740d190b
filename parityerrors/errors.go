// Package parityerrors provides structured error types for specparity.
//
// The checker distinguishes two fatal input conditions, a missing document and a
// document that cannot be parsed, plus invalid configuration. Discrepancies between
// path sets are findings, not errors, and never surface through this package.
//
// # Usage with errors.Is
//
//	report, err := checker.Run(ctx)
//	if errors.Is(err, parityerrors.ErrMissingInput) {
//	    var missing *parityerrors.MissingInputError
//	    errors.As(err, &missing)
//	    for _, loc := range missing.Locations {
//	        fmt.Println("not found:", loc)
//	    }
//	}
package parityerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrMissingInput indicates one or more required documents do not exist.
	ErrMissingInput = errors.New("missing input")

	// ErrMalformedInput indicates a document exists but could not be parsed.
	ErrMalformedInput = errors.New("malformed input")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// MissingInputError reports every required document location that does not exist.
// The existence check is exhaustive, so Locations holds all of them in check order.
type MissingInputError struct {
	// Locations are the resolved paths (or patterns) that could not be found
	Locations []string
	// Cause is the underlying error for single-location failures, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *MissingInputError) Error() string {
	switch len(e.Locations) {
	case 0:
		return "spec file not found"
	case 1:
		msg := "spec file not found: " + e.Locations[0]
		if e.Cause != nil {
			msg += ": " + e.Cause.Error()
		}
		return msg
	default:
		return fmt.Sprintf("%d spec files not found: %s", len(e.Locations), strings.Join(e.Locations, ", "))
	}
}

// Unwrap returns the underlying cause for error chaining.
func (e *MissingInputError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *MissingInputError) Is(target error) bool {
	return target == ErrMissingInput
}

// MalformedInputError represents a document whose contents are not valid structured data,
// or whose shape cannot carry a routing table.
type MalformedInputError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *MalformedInputError) Error() string {
	msg := "malformed input"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *MalformedInputError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

// ConfigError represents an invalid configuration or input option.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
