package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ferdiebergado/accounts/internal/middleware"
	"github.com/ferdiebergado/accounts/internal/pkg/message"
	"github.com/ferdiebergado/accounts/internal/pkg/web"
)

func TestCheckContentType(t *testing.T) {
	t.Parallel()

	const (
		headerCalled = "X-Handler-Called"
		handlerBody  = `{"data":{"users":[]}}`
	)

	errBody := `{"message":"` + message.InvalidInput + `"}`

	tests := []struct {
		name, method, target, contentType string
		setHeader                         bool
		wantCode                          int
		wantBody, wantCalled              string
	}{
		{"Create as json", http.MethodPost, "/users", web.MimeJSON, true, http.StatusOK, handlerBody, "true"},
		{"Update as json", http.MethodPut, "/users/1", web.MimeJSON, true, http.StatusOK, handlerBody, "true"},
		{"Change password as json", http.MethodPatch, "/users/1/password", web.MimeJSON, true, http.StatusOK, handlerBody, "true"},
		{"Json with charset", http.MethodPost, "/users", "application/json; charset=utf-8", true, http.StatusOK, handlerBody, "true"},
		{"Json in upper case", http.MethodPost, "/users", "Application/JSON", true, http.StatusOK, handlerBody, "true"},
		{"Html body", http.MethodPost, "/users", "text/html; charset=utf-8", true, http.StatusUnsupportedMediaType, errBody, ""},
		{"Json suffix type", http.MethodPut, "/users/1", "application/problem+json", true, http.StatusUnsupportedMediaType, errBody, ""},
		{"Malformed header", http.MethodPatch, "/users/1/password", "application/json; charset", true, http.StatusUnsupportedMediaType, errBody, ""},
		{"Missing header on create", http.MethodPost, "/users", "", false, http.StatusUnsupportedMediaType, errBody, ""},
		{"List without header", http.MethodGet, "/users", "", false, http.StatusOK, handlerBody, "true"},
		{"Delete without header", http.MethodDelete, "/users/1", "", false, http.StatusOK, handlerBody, "true"},
		{"Delete with other type", http.MethodDelete, "/users/1", "text/plain", true, http.StatusOK, handlerBody, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set(headerCalled, "true")
				_, _ = w.Write([]byte(handlerBody))
			})

			req := httptest.NewRequest(tt.method, tt.target, http.NoBody)
			if tt.setHeader {
				req.Header.Set(web.HeaderContentType, tt.contentType)
			}
			rec := httptest.NewRecorder()

			middleware.CheckContentType(handler).ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("rec.Code = %d, want: %d", rec.Code, tt.wantCode)
			}

			if got := rec.Header().Get(headerCalled); got != tt.wantCalled {
				t.Errorf("rec.Header().Get(%q) = %q, want: %q", headerCalled, got, tt.wantCalled)
			}

			if got := strings.TrimSuffix(rec.Body.String(), "\n"); got != tt.wantBody {
				t.Errorf("rec.Body.String() = %q, want: %q", got, tt.wantBody)
			}
		})
	}
}
