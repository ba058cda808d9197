package errors

import (
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// AnimalNotFound indicates no animal record matches the requested variant
	AnimalNotFound ErrorCode = "ANIMAL_NOT_FOUND"
	// SourceUnreadable indicates the animal data file is missing or unreadable
	SourceUnreadable ErrorCode = "SOURCE_UNREADABLE"
	// SourceInvalid indicates the animal data file is not valid JSON
	SourceInvalid ErrorCode = "SOURCE_INVALID"
	// MissingParameter indicates a required query parameter was absent or blank
	MissingParameter ErrorCode = "MISSING_PARAMETER"
	// MethodNotAllowed indicates a non-GET request
	MethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
	// RouteNotFound indicates no handler matches the request path
	RouteNotFound ErrorCode = "ROUTE_NOT_FOUND"
	// ConfigInvalid indicates a configuration value failed validation
	ConfigInvalid ErrorCode = "CONFIG_INVALID"
	// InternalError indicates unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// HueError represents a hue error with a stable code and message
type HueError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	cause   error                  // Underlying error (not exported to JSON)
}

// New creates a new HueError without an underlying cause
func New(code ErrorCode, message string) *HueError {
	return &HueError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new HueError wrapping an underlying cause
func Wrap(code ErrorCode, message string, cause error) *HueError {
	return &HueError{
		Code:    code,
		Message: message,
		cause:   cause,
	}
}

// Error implements the error interface
func (e *HueError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *HueError) Unwrap() error {
	return e.cause
}

// WithDetails adds details to the error
func (e *HueError) WithDetails(details map[string]interface{}) *HueError {
	e.Details = details
	return e
}

// GetCode walks the error chain and returns the first HueError code found.
// Errors without a HueError in their chain map to InternalError.
func GetCode(err error) ErrorCode {
	for err != nil {
		if he, ok := err.(*HueError); ok {
			return he.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return InternalError
}

// IsCode reports whether the error chain contains a HueError with the given code
func IsCode(err error, code ErrorCode) bool {
	for err != nil {
		if he, ok := err.(*HueError); ok && he.Code == code {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
