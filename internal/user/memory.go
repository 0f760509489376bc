package user

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is a Store kept in process memory, for local runs and tests.
// A single lock covers both indexes, so uniqueness checks and writes are atomic.
type MemoryStore struct {
	mu      sync.RWMutex
	byID    map[string]User
	byEmail map[string]string
	retired map[string]struct{}
	newID   func() string
	now     func() time.Time
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:    make(map[string]User),
		byEmail: make(map[string]string),
		retired: make(map[string]struct{}),
		newID:   uuid.NewString,
		now:     time.Now,
	}
}

func (s *MemoryStore) List(ctx context.Context) ([]User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]User, 0, len(s.byID))
	for _, u := range s.byID {
		users = append(users, u)
	}
	return users, nil
}

func (s *MemoryStore) Find(ctx context.Context, userID string) (*User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[userID]
	if !ok {
		return nil, fmt.Errorf("find user with id %s: %w", userID, ErrNotFound)
	}
	return &u, nil
}

func (s *MemoryStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	userID, ok := s.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("find user by email: %w", ErrNotFound)
	}
	u := s.byID[userID]
	return &u, nil
}

func (s *MemoryStore) Create(ctx context.Context, params CreateParams) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byEmail[params.Email]; taken {
		return User{}, fmt.Errorf("create user: %w", ErrDuplicateEmail)
	}

	now := s.now()
	u := User{
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
	}
	u.ID = s.freshID()
	u.CreatedAt = now
	u.UpdatedAt = now

	s.byID[u.ID] = u
	s.byEmail[u.Email] = u.ID
	return u, nil
}

func (s *MemoryStore) UpdateProfile(ctx context.Context, userID string, params UpdateProfileParams) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[userID]
	if !ok {
		return User{}, fmt.Errorf("update user with id %s: %w", userID, ErrNotFound)
	}

	if ownerID, taken := s.byEmail[params.Email]; taken && ownerID != userID {
		return User{}, fmt.Errorf("update user with id %s: %w", userID, ErrDuplicateEmail)
	}

	delete(s.byEmail, u.Email)
	u.Name = params.Name
	u.Email = params.Email
	u.UpdatedAt = s.now()

	s.byID[userID] = u
	s.byEmail[u.Email] = userID
	return u, nil
}

func (s *MemoryStore) Delete(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[userID]
	if !ok {
		return fmt.Errorf("delete user with id %s: %w", userID, ErrNotFound)
	}

	delete(s.byID, userID)
	delete(s.byEmail, u.Email)
	s.retired[userID] = struct{}{}
	return nil
}

func (s *MemoryStore) SetPasswordHash(ctx context.Context, userID, passwordHash string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[userID]
	if !ok {
		return fmt.Errorf("set password of user with id %s: %w", userID, ErrNotFound)
	}

	u.PasswordHash = passwordHash
	u.UpdatedAt = s.now()
	s.byID[userID] = u
	return nil
}

// freshID returns an id that has never been handed out. Callers hold s.mu.
func (s *MemoryStore) freshID() string {
	for {
		id := s.newID()
		_, live := s.byID[id]
		_, retired := s.retired[id]
		if !live && !retired {
			return id
		}
	}
}
