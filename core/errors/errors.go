package errors

import "fmt"

type ErrorCode string

const (
	ErrInternalServer     ErrorCode = "INTERNAL_SERVER_ERROR"
	ErrInvalidInput       ErrorCode = "INVALID_INPUT"
	ErrInvalidRequestData ErrorCode = "INVALID_REQUEST_DATA"
	ErrNotFound           ErrorCode = "NOT_FOUND"
	ErrAlreadyExists      ErrorCode = "ALREADY_EXISTS"
	ErrForbidden          ErrorCode = "FORBIDDEN"
	ErrUnauthorized       ErrorCode = "UNAUTHORIZED"

	// Calendar sync failure classes. Fetch errors are retryable from the
	// caller's point of view; crypto failures are not.
	ErrFeedValidation    ErrorCode = "FEED_VALIDATION_FAILED"
	ErrFeedFetch         ErrorCode = "FEED_FETCH_FAILED"
	ErrFeedTimeout       ErrorCode = "FEED_FETCH_TIMEOUT"
	ErrCryptoFailure     ErrorCode = "CRYPTO_FAILURE"
	ErrInvalidTransition ErrorCode = "INVALID_STATUS_TRANSITION"
)

type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
