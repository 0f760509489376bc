package web

import (
	"context"
	"errors"
)

// IsContextError reports whether err was caused by a cancelled or timed-out request.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
