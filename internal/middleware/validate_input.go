package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/accounts/internal/pkg/message"
	"github.com/ferdiebergado/accounts/internal/pkg/web"
	"github.com/ferdiebergado/accounts/internal/platform/validation"
)

func ValidateInput[T any](validator validation.Validator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slog.Debug("Validating input...")
			params, err := web.ParamsFromContext[T](r.Context())
			if err != nil {
				web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
				return
			}

			if errs := validator.ValidateStruct(params); errs != nil {
				web.Fail(w, http.StatusUnprocessableEntity, errors.New("invalid input"), message.InvalidInput, errs)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
