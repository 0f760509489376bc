package middleware

import (
	"fmt"
	"log/slog"
	"mime"
	"net/http"

	"github.com/ferdiebergado/accounts/internal/pkg/message"
	"github.com/ferdiebergado/accounts/internal/pkg/web"
)

// CheckContentType rejects requests with a body that is not sent as JSON.
// Media type parameters such as charset are accepted.
func CheckContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			next.ServeHTTP(w, r)
			return
		}

		slog.Debug("Checking Content-Type...")
		contentType := r.Header.Get(web.HeaderContentType)

		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != web.MimeJSON {
			web.Fail(w, http.StatusUnsupportedMediaType, fmt.Errorf("invalid content-type: %q", contentType), message.InvalidInput, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
