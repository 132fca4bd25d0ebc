package repository

import "errors"

// Storage-level errors shared by every repository implementation. The
// application layer translates these into caller-facing failures.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
)
