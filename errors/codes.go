package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Construction errors (composition rejected before any run starts)
const (
	// ErrCodeTypeMismatch indicates two endpoints with incompatible element types.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
	// ErrCodeInvalidBlueprint indicates a blueprint that cannot be composed or run
	// (e.g. connecting on a side that is already closed).
	ErrCodeInvalidBlueprint ErrorCode = "INVALID_BLUEPRINT"
	// ErrCodeInvalidInput indicates invalid input to a constructor or option.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Run errors (terminal state of a single materialization)
const (
	// ErrCodeRunFailed indicates a run ended because a stage function failed or panicked.
	ErrCodeRunFailed ErrorCode = "RUN_FAILED"
	// ErrCodeRunCancelled indicates a run was stopped through its cancellation handle.
	ErrCodeRunCancelled ErrorCode = "RUN_CANCELLED"
	// ErrCodeNoElements indicates a sink that requires at least one element saw none.
	ErrCodeNoElements ErrorCode = "NO_ELEMENTS"
)

// Caller-side errors (the run itself is unaffected)
const (
	// ErrCodeAwaitTimeout indicates a wait on a materialized value timed out.
	ErrCodeAwaitTimeout ErrorCode = "AWAIT_TIMEOUT"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// retryableCodes are error codes where retrying the operation may succeed.
// An await timeout is caller-side only: the run keeps going, so waiting again
// is a legitimate retry.
var retryableCodes = map[ErrorCode]bool{
	ErrCodeAwaitTimeout: true,
}

// IsRetryableCode returns true if the error code indicates a retryable condition.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
