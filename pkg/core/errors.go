package core

import "errors"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an error that did not originate in this module.
	CodeUnknown Code = "UNKNOWN"
	// CodeOutOfRange marks a grid access whose flat offset fell outside the grid.
	CodeOutOfRange Code = "OUT_OF_RANGE"
	// CodeInvalidGoal marks a raw goal value that names no goal.
	CodeInvalidGoal Code = "INVALID_GOAL"
	// CodeDimensionMismatch marks cell data that does not fill width*height.
	CodeDimensionMismatch Code = "DIMENSION_MISMATCH"
)

// Sentinels for errors.Is. Matching is by code, so any *Error carrying the same
// code matches regardless of message or metadata.
var (
	ErrOutOfRange        = &Error{Code: CodeOutOfRange, Message: "index out of range"}
	ErrInvalidGoal       = &Error{Code: CodeInvalidGoal, Message: "invalid goal"}
	ErrDimensionMismatch = &Error{Code: CodeDimensionMismatch, Message: "dimension mismatch"}
)

// Error is the domain error type with structured metadata.
type Error struct {
	Code     Code              // Machine-readable error code
	Message  string            // Human-readable message
	Metadata map[string]string // Values that caused the failure
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// NewError creates a domain error with a code, message and optional metadata.
func NewError(code Code, message string, metadata map[string]string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Metadata: metadata,
	}
}

// GetCode extracts the error code from any error.
// Returns CodeUnknown if the error is not a domain error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// IsCode checks if the error has the specified code.
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}
