package message

const (
	InvalidInput       = "Invalid input."
	UnknownField       = "Unknown field in payload."
	EnvErrFmt          = "environment variable is not set: %s"
	RequestCancelled   = "Request cancelled or timed out."
	InternalError      = "An unexpected error occurred."
	UnknownUser        = "Unknown user"
	UserCreated        = "User created."
	UserUpdated        = "User updated."
	UserDeleted        = "User deleted."
	DeleteFailed       = "Failed to delete user"
	EmailTaken         = "EMAIL_ALREADY_TAKEN"
	PasswordMismatch   = "Password and confirmation do not match."
	UserNotFound       = "User not found"
	WrongEmail         = "Wrong email"
	InvalidCredentials = "Wrong email or password"
	PasswordFailed     = "Failed to change password"
	PasswordUpdated    = "Password updated successfully."
)
