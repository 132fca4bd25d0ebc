package entity

import (
	"time"
)

// User belongs to at most one Account. AccountID is nullable only during the
// short registration window before the account row exists.
// Passwords are stored as bcrypt hashes in Password and never serialized out.
type User struct {
	ID            string
	Email         string
	Password      string
	Name          string
	EmailVerified *time.Time
	AccountID     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Verified reports whether the user has completed email verification.
func (u *User) Verified() bool { return u.EmailVerified != nil }
