package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the bot's domain failure modes.
var (
	// ErrDuplicateSubmission is returned when a player already has a score
	// recorded for the same group and puzzle date.
	ErrDuplicateSubmission = errors.New("duplicate submission")

	// ErrDuplicateWord is returned when a word already exists in the pool.
	ErrDuplicateWord = errors.New("duplicate word")

	// ErrNoWordsAvailable is returned when every word in the pool has been used.
	ErrNoWordsAvailable = errors.New("no unused words available")

	// ErrRemoteUnavailable is returned when the LeetCode endpoint fails,
	// times out, or returns a payload without the requested user.
	ErrRemoteUnavailable = errors.New("remote stats unavailable")

	// ErrStoreUnavailable is returned when the persistent store cannot be reached.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Error codes
const (
	ErrCodeDuplicate  = "DUPLICATE"
	ErrCodeExhausted  = "EXHAUSTED"
	ErrCodeRemote     = "REMOTE_UNAVAILABLE"
	ErrCodeStore      = "STORE_UNAVAILABLE"
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeInternal   = "INTERNAL_ERROR"
)

// AppError carries an error code and a user-facing message alongside the
// wrapped cause.
type AppError struct {
	Code    string // Error code (e.g., "DUPLICATE", "REMOTE_UNAVAILABLE")
	Message string // Human-readable error message
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal error",
		Err:     err,
	}
}

// NewRemoteError wraps a failed stats fetch as REMOTE_UNAVAILABLE.
func NewRemoteError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeRemote,
		Message: "stats service unreachable",
		Err:     fmt.Errorf("%w: %w", ErrRemoteUnavailable, err),
	}
}

// Is reports whether err matches target, unwrapping AppError chains.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
