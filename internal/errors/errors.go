// Package errors provides error types and handling for ecs-find-tasks.
// It includes a coded application error and helpers to inspect AWS API errors.
package errors

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// AppError represents an application error with a machine-readable code.
type AppError struct {
	// Code is an error code string for programmatic handling
	Code string
	// Message is a user-friendly error message
	Message string
	// Cause is the underlying error (for error wrapping)
	Cause error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error for error unwrapping.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is allows errors.Is to work with AppError.
func (e *AppError) Is(target error) bool {
	if t, ok := target.(*AppError); ok {
		return e.Code != "" && e.Code == t.Code
	}
	return false
}

// Predefined error codes.
const (
	// Input error codes.
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeInvalidConfig = "INVALID_CONFIG"

	// Remote and internal error codes.
	ErrCodeAPIError      = "API_ERROR"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// New creates an AppError with the given code.
func New(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// ErrInvalidInput creates an error for a malformed pipeline input or flag.
func ErrInvalidInput(message string, cause error) *AppError {
	return New(ErrCodeInvalidInput, message, cause)
}

// ErrInvalidConfig creates an error for a configuration that failed to load or validate.
func ErrInvalidConfig(message string, cause error) *AppError {
	return New(ErrCodeInvalidConfig, message, cause)
}

// ErrAPI creates an error for a failed AWS API call.
// The AWS error code is appended to the message when the cause carries one.
func ErrAPI(operation string, cause error) *AppError {
	message := operation + " failed"
	if code := APIErrorCode(cause); code != "" {
		message = fmt.Sprintf("%s (%s)", message, code)
	}
	return New(ErrCodeAPIError, message, cause)
}

// ErrInternalError creates an internal error.
func ErrInternalError(message string, cause error) *AppError {
	return New(ErrCodeInternalError, message, cause)
}

// APIErrorCode returns the AWS error code (e.g. "ClusterNotFoundException") carried by err.
// Returns empty string if err does not wrap a smithy API error.
func APIErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// GetErrorCode extracts the error code from an error.
// Returns empty string if the error is not an AppError.
func GetErrorCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// GetErrorMessage extracts a user-friendly message from an error.
func GetErrorMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// GetErrorDetails extracts detailed error information including the underlying cause.
// Returns the underlying error message if available, otherwise returns the main error message.
func GetErrorDetails(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Cause != nil {
			return appErr.Cause.Error()
		}
		return appErr.Message
	}
	return err.Error()
}
