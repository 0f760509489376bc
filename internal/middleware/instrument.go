package middleware

import (
	"net/http"
	"time"
)

type RequestObserver interface {
	ObserveRequest(method string, status int, elapsed time.Duration)
}

// Instrument reports every request to obs. It expects InjectWriter to run first.
func Instrument(obs RequestObserver) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)

			status := defaultStatus
			if writer, ok := w.(*SafeResponseWriter); ok {
				status = writer.Status()
			}
			obs.ObserveRequest(r.Method, status, time.Since(start))
		})
	}
}
