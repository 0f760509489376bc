package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ferdiebergado/accounts/internal/platform/hash"
)

const maskChar = "*"

// Authenticator is the sole authority on whether an email/password pair
// is valid. ok is false on a mismatch; err is reserved for failures.
type Authenticator interface {
	Verify(ctx context.Context, email, password string) (identity Identity, ok bool, err error)
}

type Service struct {
	store  Store
	hasher hash.Hasher
	auth   Authenticator
}

var _ UserService = (*Service)(nil)

func NewService(store Store, hasher hash.Hasher, auth Authenticator) *Service {
	return &Service{
		store:  store,
		hasher: hasher,
		auth:   auth,
	}
}

type CreateUserParams struct {
	Name            string
	Email           string
	Password        string
	PasswordConfirm string
}

func (p CreateUserParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", p.Name),
		slog.String("email", maskChar),
		slog.String("password", maskChar),
		slog.String("password_confirm", maskChar),
	)
}

type UpdateUserParams struct {
	Name  string
	Email string
}

type ChangePasswordParams struct {
	ID                 string
	Email              string
	Password           string
	PasswordConfirm    string
	NewPassword        string
	NewPasswordConfirm string
}

func (p ChangePasswordParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", p.ID),
		slog.String("email", maskChar),
		slog.String("password", maskChar),
		slog.String("password_confirm", maskChar),
		slog.String("new_password", maskChar),
		slog.String("new_password_confirm", maskChar),
	)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	users, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list users: %w", ErrInternal, err)
	}

	for i := range users {
		users[i] = withoutHash(users[i])
	}
	return users, nil
}

func (s *Service) Find(ctx context.Context, userID string) (User, error) {
	u, err := s.store.Find(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, fmt.Errorf("%w: %s", ErrUnknownUser, userID)
		}
		return User{}, fmt.Errorf("%w: find user %s: %w", ErrInternal, userID, err)
	}
	return withoutHash(*u), nil
}

func (s *Service) Create(ctx context.Context, params CreateUserParams) (User, error) {
	if params.Password != params.PasswordConfirm {
		return User{}, fmt.Errorf("%w: password confirmation mismatch", ErrInvalidPassword)
	}

	passwordHash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return User{}, fmt.Errorf("%w: hash password: %w", ErrInternal, err)
	}

	u, err := s.store.Create(ctx, CreateParams{
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return User{}, ErrEmailTaken
		}
		return User{}, fmt.Errorf("%w: create user: %w", ErrInternal, err)
	}

	slog.Info("User created.", "user_id", u.ID)
	return withoutHash(u), nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, params UpdateUserParams) (User, error) {
	u, err := s.store.UpdateProfile(ctx, userID, UpdateProfileParams(params))
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateEmail):
			return User{}, ErrEmailTaken
		case errors.Is(err, ErrNotFound):
			return User{}, fmt.Errorf("%w: %s", ErrUnknownUser, userID)
		default:
			return User{}, fmt.Errorf("%w: update user %s: %w", ErrInternal, userID, err)
		}
	}
	return withoutHash(u), nil
}

// Delete reports every store failure as ErrUnprocessable; the cause stays
// reachable through errors.Is.
func (s *Service) Delete(ctx context.Context, userID string) error {
	if err := s.store.Delete(ctx, userID); err != nil {
		return fmt.Errorf("%w: delete user %s: %w", ErrUnprocessable, userID, err)
	}

	slog.Info("User deleted.", "user_id", userID)
	return nil
}

// ChangePassword runs its checks in a fixed order and stops at the first
// failure:
//
//  1. new password confirmation
//  2. user lookup by id
//  3. supplied email against the stored email
//  4. current password confirmation
//  5. credential check by the Authenticator
//  6. hash and store the new password
//
// The email is validated as of step 2; the write in step 6 targets the id.
func (s *Service) ChangePassword(ctx context.Context, params ChangePasswordParams) error {
	if params.NewPassword != params.NewPasswordConfirm {
		return fmt.Errorf("%w: new password confirmation mismatch", ErrInvalidPassword)
	}

	u, err := s.store.Find(ctx, params.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: user not found", ErrUnauthorized)
		}
		return fmt.Errorf("%w: find user %s: %w", ErrInternal, params.ID, err)
	}

	if u.Email != params.Email {
		return fmt.Errorf("%w: wrong email", ErrEmailMismatch)
	}

	if params.Password != params.PasswordConfirm {
		return fmt.Errorf("%w: current password confirmation mismatch", ErrInvalidPassword)
	}

	_, ok, err := s.auth.Verify(ctx, params.Email, params.Password)
	if err != nil {
		return fmt.Errorf("%w: verify credentials: %w", ErrInternal, err)
	}

	if !ok {
		return ErrInvalidCredentials
	}

	newHash, err := s.hasher.Hash(params.NewPassword)
	if err != nil {
		return fmt.Errorf("%w: hash new password: %w", ErrInternal, err)
	}

	if err := s.store.SetPasswordHash(ctx, u.ID, newHash); err != nil {
		return fmt.Errorf("%w: set password hash: %w", ErrInternal, err)
	}

	slog.Info("Password changed.", "user_id", u.ID)
	return nil
}
