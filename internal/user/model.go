package user

import (
	"github.com/ferdiebergado/accounts/internal/model"
)

type User struct {
	model.Model

	Name         string
	Email        string
	PasswordHash string
}

// Identity describes the account an email/password pair was verified against.
type Identity struct {
	ID    string
	Email string
}

// withoutHash returns a copy of u that is safe to hand to callers.
func withoutHash(u User) User {
	u.PasswordHash = ""
	return u
}
