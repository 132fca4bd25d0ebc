package entity

import "time"

// Account is the tenant entity. OwnerID always references a User whose
// AccountID points back at this account.
type Account struct {
	ID        string
	Name      *string
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Member is the reduced user view returned with an account profile.
type Member struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	EmailVerified *time.Time `json:"emailVerified"`
}
