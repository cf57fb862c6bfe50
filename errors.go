// Package regnet structured error types for solver failure reporting
package regnet

import (
	"fmt"
)

// ErrorType represents categories of errors
type ErrorType int

const (
	// Invalid argument errors (negative penalty, bad option values)
	ErrTypeInvalidArg ErrorType = iota
	// Dimension mismatch errors (sample count disagreement)
	ErrTypeDimension
	// Numerical errors (factorization did not converge)
	ErrTypeNumerical
	// Not implemented errors
	ErrTypeNotImplemented
)

// Error represents a structured solver error with context.
// Non-convergence within the iteration budget is not an error; it is
// reported through the Convergence record instead.
type Error struct {
	Type    ErrorType
	Op      string // Operation that failed
	Message string // Human-readable message
	Err     error  // Underlying error if any
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("regnet %s error in %s: %s (caused by: %v)",
			e.Type.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("regnet %s error in %s: %s", e.Type.String(), e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// String returns the error type as a string
func (t ErrorType) String() string {
	switch t {
	case ErrTypeInvalidArg:
		return "InvalidArgument"
	case ErrTypeDimension:
		return "Dimension"
	case ErrTypeNumerical:
		return "Numerical"
	case ErrTypeNotImplemented:
		return "NotImplemented"
	default:
		return "Unknown"
	}
}

// Common error constructors

// NewInvalidArgError creates an invalid argument error
func NewInvalidArgError(op string, message string) error {
	return &Error{
		Type:    ErrTypeInvalidArg,
		Op:      op,
		Message: message,
	}
}

// NewDimensionError creates a dimension mismatch error
func NewDimensionError(op string, message string) error {
	return &Error{
		Type:    ErrTypeDimension,
		Op:      op,
		Message: message,
	}
}

// NewNumericalError creates a numerical error
func NewNumericalError(op string, message string, err error) error {
	return &Error{
		Type:    ErrTypeNumerical,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// IsInvalidArgError checks if an error is an invalid argument error
func IsInvalidArgError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == ErrTypeInvalidArg
	}
	return false
}

// IsDimensionError checks if an error is a dimension mismatch error
func IsDimensionError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == ErrTypeDimension
	}
	return false
}

// IsNumericalError checks if an error is a numerical error
func IsNumericalError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == ErrTypeNumerical
	}
	return false
}
