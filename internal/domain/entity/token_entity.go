package entity

import "time"

// VerificationToken proves control of an email address. It is keyed by the
// email (Identifier) rather than a user FK so issuing never depends on user
// row visibility. At most one active token exists per identifier.
type VerificationToken struct {
	Identifier string
	Token      string
	Expires    time.Time
}

func (t *VerificationToken) Expired(now time.Time) bool {
	return t.Expires.Before(now)
}
