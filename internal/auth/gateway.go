// Package auth verifies email and password pairs against stored credentials.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ferdiebergado/accounts/internal/platform/hash"
	"github.com/ferdiebergado/accounts/internal/user"
)

// UserFinder looks up the account that owns an email.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}

type Gateway struct {
	users  UserFinder
	hasher hash.Hasher
}

var _ user.Authenticator = (*Gateway)(nil)

func NewGateway(users UserFinder, hasher hash.Hasher) *Gateway {
	return &Gateway{
		users:  users,
		hasher: hasher,
	}
}

// Verify reports whether password matches the one stored for email.
// An unknown email is a mismatch, not an error.
func (g *Gateway) Verify(ctx context.Context, email, password string) (user.Identity, bool, error) {
	u, err := g.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			slog.Debug("No account for email.")
			return user.Identity{}, false, nil
		}
		return user.Identity{}, false, fmt.Errorf("find user by email: %w", err)
	}

	ok, err := g.hasher.Verify(password, u.PasswordHash)
	if err != nil {
		return user.Identity{}, false, fmt.Errorf("verify password of user %s: %w", u.ID, err)
	}

	if !ok {
		return user.Identity{}, false, nil
	}

	return user.Identity{ID: u.ID, Email: u.Email}, true, nil
}
