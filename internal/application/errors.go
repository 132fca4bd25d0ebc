package application

import (
	"errors"
	"fmt"
)

// Caller-facing failure set. The HTTP layer maps these onto statuses and
// stable machine codes; everything else is reported as an internal error.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrAlreadyVerified    = errors.New("email already verified")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrTokenNotFound      = errors.New("invalid verification token")
	ErrTokenExpired       = errors.New("verification token expired")
	ErrForbidden          = errors.New("forbidden")
)

// ValidationError reports a rejected input field before any mutation happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
