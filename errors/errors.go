// Package errors provides unified error handling for the streamkit packages.
// It implements structured error types with error codes and retryable detection,
// separating construction-time composition errors from per-run terminal errors
// and caller-side wait conditions.
package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified library error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// --- Common Error Constructors ---

// TypeMismatch creates a new AppError for connecting endpoints whose element
// types do not match.
func TypeMismatch(outType, inType string) *AppError {
	return &AppError{
		Code: ErrCodeTypeMismatch, Message: fmt.Sprintf("cannot connect output of type %s to input of type %s", outType, inType),
		Retryable: false,
		Details:   map[string]any{"out_type": outType, "in_type": inType},
	}
}

// InvalidBlueprint creates a new AppError for a blueprint that cannot be
// composed or materialized.
func InvalidBlueprint(reason string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidBlueprint, Message: reason,
		Retryable: false,
	}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		Retryable: false, Details: details,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		Retryable: false,
	}
}

// RunFailed creates a new AppError for a run that ended in failure.
func RunFailed(runID string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeRunFailed, Message: "The run ended because a stage failed.",
		Retryable: false, Cause: cause,
		Details: map[string]any{"run_id": runID},
	}
}

// RunCancelled creates a new AppError for a run stopped through its
// cancellation handle.
func RunCancelled(runID string) *AppError {
	return &AppError{
		Code: ErrCodeRunCancelled, Message: "The run was cancelled.",
		Retryable: false,
		Details:   map[string]any{"run_id": runID},
	}
}

// NoElements creates a new AppError for a sink that saw an empty stream.
func NoElements(sink string) *AppError {
	return &AppError{
		Code: ErrCodeNoElements, Message: fmt.Sprintf("The %s sink completed without receiving any element.", sink),
		Retryable: false,
		Details:   map[string]any{"sink": sink},
	}
}

// AwaitTimeout creates a new AppError for a wait on a materialized value that
// timed out. The run itself keeps going; waiting again is legitimate.
func AwaitTimeout(operation string) *AppError {
	return &AppError{
		Code: ErrCodeAwaitTimeout, Message: "Waiting on the materialized value took too long.",
		Retryable: true,
		Details:   map[string]any{"operation": operation},
	}
}

// Internal creates a new AppError for an unexpected internal error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.",
		Retryable: false, Cause: cause,
	}
}

// --- Inspection helpers ---

// AsAppError extracts an *AppError from err's chain, if present.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code ErrorCode) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == code
	}
	return false
}

// IsTypeMismatch reports whether err is a connect-time element type mismatch.
func IsTypeMismatch(err error) bool { return IsCode(err, ErrCodeTypeMismatch) }

// IsAwaitTimeout reports whether err is a caller-side wait timeout.
func IsAwaitTimeout(err error) bool { return IsCode(err, ErrCodeAwaitTimeout) }

// IsRunCancelled reports whether err indicates a cancelled run.
func IsRunCancelled(err error) bool { return IsCode(err, ErrCodeRunCancelled) }

// IsRetryable reports whether the error indicates a retryable condition.
func IsRetryable(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Retryable
	}
	return false
}
