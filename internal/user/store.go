package user

import "context"

// Store persists users. Implementations must make the email uniqueness check
// atomic with the write in Create and UpdateProfile, report a conflict as
// ErrDuplicateEmail and an unknown id as ErrNotFound.
type Store interface {
	List(ctx context.Context) ([]User, error)
	Find(ctx context.Context, userID string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, params CreateParams) (User, error)
	UpdateProfile(ctx context.Context, userID string, params UpdateProfileParams) (User, error)
	Delete(ctx context.Context, userID string) error
	SetPasswordHash(ctx context.Context, userID, passwordHash string) error
}

type CreateParams struct {
	Name         string
	Email        string
	PasswordHash string
}

type UpdateProfileParams struct {
	Name  string
	Email string
}
