package app

import (
	"github.com/ferdiebergado/accounts/internal/middleware"
	"github.com/ferdiebergado/accounts/internal/platform/metrics"
	"github.com/ferdiebergado/accounts/internal/platform/router"
	"github.com/ferdiebergado/accounts/internal/platform/validation"
	"github.com/ferdiebergado/accounts/internal/user"
)

func mountUserRoutes(r router.Router, handler *user.Handler, validator validation.Validator, maxBodySize int64) {
	r.Get("/users", handler.List)
	r.Get("/users/{id}", handler.Find)
	r.Post("/users", handler.Create,
		middleware.DecodePayload[user.CreateUserRequest](maxBodySize),
		middleware.ValidateInput[user.CreateUserRequest](validator))
	r.Put("/users/{id}", handler.Update,
		middleware.DecodePayload[user.UpdateUserRequest](maxBodySize),
		middleware.ValidateInput[user.UpdateUserRequest](validator))
	r.Delete("/users/{id}", handler.Delete)
	r.Patch("/users/{id}/password", handler.ChangePassword,
		middleware.DecodePayload[user.ChangePasswordRequest](maxBodySize),
		middleware.ValidateInput[user.ChangePasswordRequest](validator))
}

func mountMetricsRoute(r router.Router, m *metrics.Metrics) {
	r.Get("/metrics", m.Handler().ServeHTTP)
}
