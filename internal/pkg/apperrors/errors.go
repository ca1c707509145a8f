package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreUnavailable covers any failure to acquire a store connection or run a query.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrNetworkFailure covers any failure of the dashboard to fetch records from the API.
	ErrNetworkFailure = errors.New("network failure")
)

type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func WrapStoreError(cause error, message string) error {
	return &AppError{
		Code:    "STORE_UNAVAILABLE",
		Message: message,
		Cause:   fmt.Errorf("%w: %w", ErrStoreUnavailable, cause),
	}
}

func WrapNetworkError(cause error, message string) error {
	return &AppError{
		Code:    "NETWORK_FAILURE",
		Message: message,
		Cause:   fmt.Errorf("%w: %w", ErrNetworkFailure, cause),
	}
}
