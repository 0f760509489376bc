package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ferdiebergado/accounts/internal/platform/db"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrQueryFailed = errors.New("user repository: query failed")

// Repository is the Postgres Store. Email uniqueness rests on the
// users_email_key unique index, so each write is a single statement.
type Repository struct {
	db db.Executor
}

var _ Store = (*Repository)(nil)

func NewRepository(dbExec db.Executor) *Repository {
	return &Repository{db: dbExec}
}

const QueryUserList = `
SELECT id, name, email, password_hash, created_at, updated_at
FROM users
`

func (r *Repository) List(ctx context.Context) ([]User, error) {
	rows, err := r.db.QueryContext(ctx, QueryUserList)
	if err != nil {
		return nil, fmt.Errorf("%w: list users: %w", ErrQueryFailed, err)
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("user repository: scan row: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("user repository: iterate over user rows: %w", err)
	}

	return users, nil
}

const QueryUserFind = `
SELECT id, name, email, password_hash, created_at, updated_at
FROM users
WHERE id = $1
`

func (r *Repository) Find(ctx context.Context, userID string) (*User, error) {
	row := r.db.QueryRowContext(ctx, QueryUserFind, userID)
	var u User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, mapError(err, "find user with id "+userID)
	}
	return &u, nil
}

const QueryUserFindByEmail = `
SELECT id, name, email, password_hash, created_at, updated_at
FROM users
WHERE email = $1
LIMIT 1
`

func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	row := r.db.QueryRowContext(ctx, QueryUserFindByEmail, email)
	var u User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, mapError(err, "find user by email")
	}
	return &u, nil
}

const QueryUserCreate = `
INSERT INTO users (name, email, password_hash)
VALUES ($1, $2, $3)
RETURNING id, name, email, password_hash, created_at, updated_at
`

func (r *Repository) Create(ctx context.Context, params CreateParams) (User, error) {
	row := r.db.QueryRowContext(ctx, QueryUserCreate, params.Name, params.Email, params.PasswordHash)
	var u User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return User{}, mapError(err, "create user")
	}
	return u, nil
}

const QueryUserUpdateProfile = `
UPDATE users
SET name = $2, email = $3, updated_at = NOW()
WHERE id = $1
RETURNING id, name, email, password_hash, created_at, updated_at
`

func (r *Repository) UpdateProfile(ctx context.Context, userID string, params UpdateProfileParams) (User, error) {
	row := r.db.QueryRowContext(ctx, QueryUserUpdateProfile, userID, params.Name, params.Email)
	var u User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return User{}, mapError(err, "update user with id "+userID)
	}
	return u, nil
}

const QueryUserDelete = "DELETE FROM users WHERE id = $1"

func (r *Repository) Delete(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx, QueryUserDelete, userID)
	if err != nil {
		return mapError(err, "delete user with id "+userID)
	}

	return checkAffected(res, "delete user with id "+userID)
}

const QueryUserSetPasswordHash = "UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1"

func (r *Repository) SetPasswordHash(ctx context.Context, userID, passwordHash string) error {
	res, err := r.db.ExecContext(ctx, QueryUserSetPasswordHash, userID, passwordHash)
	if err != nil {
		return mapError(err, "set password of user with id "+userID)
	}

	return checkAffected(res, "set password of user with id "+userID)
}

func checkAffected(res sql.Result, op string) error {
	numRows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s: get rows affected: %w", ErrQueryFailed, op, err)
	}

	if numRows == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return nil
}

// mapError translates driver errors into store errors. An id that is not a
// valid uuid cannot name any user, so it is reported as not found.
func mapError(err error, op string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%s: %w", op, ErrDuplicateEmail)
		case pgerrcode.InvalidTextRepresentation:
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}
	}

	return fmt.Errorf("%w: %s: %w", ErrQueryFailed, op, err)
}
