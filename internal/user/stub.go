package user

import (
	"context"
	"errors"
	"sync/atomic"
)

type StubService struct {
	ListFunc           func(ctx context.Context) ([]User, error)
	FindFunc           func(ctx context.Context, userID string) (User, error)
	CreateFunc         func(ctx context.Context, params CreateUserParams) (User, error)
	UpdateProfileFunc  func(ctx context.Context, userID string, params UpdateUserParams) (User, error)
	DeleteFunc         func(ctx context.Context, userID string) error
	ChangePasswordFunc func(ctx context.Context, params ChangePasswordParams) error
}

var _ UserService = (*StubService)(nil)

func (s *StubService) List(ctx context.Context) ([]User, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx)
}

func (s *StubService) Find(ctx context.Context, userID string) (User, error) {
	if s.FindFunc == nil {
		return User{}, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, userID)
}

func (s *StubService) Create(ctx context.Context, params CreateUserParams) (User, error) {
	if s.CreateFunc == nil {
		return User{}, errors.New("Create() not implemented by stub")
	}
	return s.CreateFunc(ctx, params)
}

func (s *StubService) UpdateProfile(ctx context.Context, userID string, params UpdateUserParams) (User, error) {
	if s.UpdateProfileFunc == nil {
		return User{}, errors.New("UpdateProfile() not implemented by stub")
	}
	return s.UpdateProfileFunc(ctx, userID, params)
}

func (s *StubService) Delete(ctx context.Context, userID string) error {
	if s.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return s.DeleteFunc(ctx, userID)
}

func (s *StubService) ChangePassword(ctx context.Context, params ChangePasswordParams) error {
	if s.ChangePasswordFunc == nil {
		return errors.New("ChangePassword() not implemented by stub")
	}
	return s.ChangePasswordFunc(ctx, params)
}

type StubStore struct {
	ListFunc            func(ctx context.Context) ([]User, error)
	FindFunc            func(ctx context.Context, userID string) (*User, error)
	FindByEmailFunc     func(ctx context.Context, email string) (*User, error)
	CreateFunc          func(ctx context.Context, params CreateParams) (User, error)
	UpdateProfileFunc   func(ctx context.Context, userID string, params UpdateProfileParams) (User, error)
	DeleteFunc          func(ctx context.Context, userID string) error
	SetPasswordHashFunc func(ctx context.Context, userID, passwordHash string) error
}

var _ Store = (*StubStore)(nil)

func (s *StubStore) List(ctx context.Context) ([]User, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx)
}

func (s *StubStore) Find(ctx context.Context, userID string) (*User, error) {
	if s.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, userID)
}

func (s *StubStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	if s.FindByEmailFunc == nil {
		return nil, errors.New("FindByEmail() not implemented by stub")
	}
	return s.FindByEmailFunc(ctx, email)
}

func (s *StubStore) Create(ctx context.Context, params CreateParams) (User, error) {
	if s.CreateFunc == nil {
		return User{}, errors.New("Create() not implemented by stub")
	}
	return s.CreateFunc(ctx, params)
}

func (s *StubStore) UpdateProfile(ctx context.Context, userID string, params UpdateProfileParams) (User, error) {
	if s.UpdateProfileFunc == nil {
		return User{}, errors.New("UpdateProfile() not implemented by stub")
	}
	return s.UpdateProfileFunc(ctx, userID, params)
}

func (s *StubStore) Delete(ctx context.Context, userID string) error {
	if s.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return s.DeleteFunc(ctx, userID)
}

func (s *StubStore) SetPasswordHash(ctx context.Context, userID, passwordHash string) error {
	if s.SetPasswordHashFunc == nil {
		return errors.New("SetPasswordHash() not implemented by stub")
	}
	return s.SetPasswordHashFunc(ctx, userID, passwordHash)
}

// StubAuthenticator counts calls so tests can assert it was never reached.
type StubAuthenticator struct {
	VerifyFunc func(ctx context.Context, email, password string) (Identity, bool, error)

	calls atomic.Int32
}

var _ Authenticator = (*StubAuthenticator)(nil)

func (a *StubAuthenticator) Verify(ctx context.Context, email, password string) (Identity, bool, error) {
	a.calls.Add(1)
	if a.VerifyFunc == nil {
		return Identity{}, false, errors.New("Verify() not implemented by stub")
	}
	return a.VerifyFunc(ctx, email, password)
}

func (a *StubAuthenticator) Calls() int {
	return int(a.calls.Load())
}
