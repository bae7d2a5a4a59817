package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a semantic classification shared across transport layers.
type ErrorCode string

const (
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeInvalid      ErrorCode = "INVALID"
	ErrCodeConflict     ErrorCode = "CONFLICT"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInternal     ErrorCode = "INTERNAL"
)

// Error represents a domain-level error.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an existing error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain errors.
var (
	// ErrInvalidCredentials is shared by the unknown-email and wrong-password
	// paths so responses never reveal which of the two failed.
	ErrInvalidCredentials = NewError(ErrCodeUnauthorized, "invalid credentials")

	// ErrActivityNotFound covers both a missing activity and one owned by
	// another user; callers cannot tell the two apart.
	ErrActivityNotFound = NewError(ErrCodeNotFound, "activity not found or not yours to change")

	ErrUserNotFound   = NewError(ErrCodeNotFound, "user not found")
	ErrEmailTaken     = NewError(ErrCodeConflict, "email already registered")
	ErrInvalidPayload = NewError(ErrCodeInvalid, "invalid payload")
	ErrCacheMiss      = NewError(ErrCodeNotFound, "cache miss")
)

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}
