package user

import "errors"

// Store errors.
var (
	ErrNotFound       = errors.New("user store: user not found")
	ErrDuplicateEmail = errors.New("user store: email already exists")
)

// Service errors, one per failure kind reported to callers.
var (
	ErrInvalidPassword    = errors.New("invalid password")
	ErrEmailTaken         = errors.New("email already taken")
	ErrUnknownUser        = errors.New("unknown user")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrEmailMismatch      = errors.New("email mismatch")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnprocessable      = errors.New("unprocessable")
	ErrInternal           = errors.New("internal error")
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrInvalidPassword, "INVALID_PASSWORD"},
	{ErrEmailTaken, "EMAIL_ALREADY_TAKEN"},
	{ErrUnknownUser, "UNKNOWN_USER"},
	{ErrUnauthorized, "UNAUTHORIZED"},
	{ErrEmailMismatch, "EMAIL_MISMATCH"},
	{ErrInvalidCredentials, "INVALID_CREDENTIALS"},
	{ErrUnprocessable, "UNPROCESSABLE"},
	{ErrInternal, "INTERNAL"},
}

// Kind names the failure kind of err, e.g. "EMAIL_MISMATCH". Errors that
// carry no kind are reported as "INTERNAL"; a nil error has no kind.
func Kind(err error) string {
	if err == nil {
		return ""
	}

	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}

	return "INTERNAL"
}
