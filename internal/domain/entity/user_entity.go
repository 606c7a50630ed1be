package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// Password holds a bcrypt hash, never the plaintext. TokenValidation is the
// single-use email verification secret: non-empty exactly while the account
// has never been verified, cleared forever once IsValidated flips to true.
type User struct {
	ID              string
	Email           string
	Username        string
	Password        string
	Name            string
	TokenValidation string
	IsValidated     bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
