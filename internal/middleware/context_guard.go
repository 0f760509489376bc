package middleware

import (
	"net/http"

	"github.com/ferdiebergado/accounts/internal/pkg/message"
	"github.com/ferdiebergado/accounts/internal/pkg/web"
)

// ContextGuard stops requests whose context is already done before any work starts.
func ContextGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.Context().Err(); err != nil {
			web.Fail(w, http.StatusRequestTimeout, err, message.RequestCancelled, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
