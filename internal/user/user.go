package user

import "github.com/ferdiebergado/accounts/internal/platform/hash"

// Module wires a Store to the service and HTTP handler built on it.
type Module struct {
	store   Store
	svc     *Service
	handler *Handler
}

func (m *Module) Handler() *Handler {
	return m.handler
}

func (m *Module) Service() *Service {
	return m.svc
}

func (m *Module) Store() Store {
	return m.store
}

func NewModule(store Store, hasher hash.Hasher, auth Authenticator, metrics ErrorRecorder) *Module {
	svc := NewService(store, hasher, auth)
	handler := NewHandler(svc, metrics)
	return &Module{
		store:   store,
		svc:     svc,
		handler: handler,
	}
}
