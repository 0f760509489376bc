package router

import (
	"net/http"

	"github.com/ferdiebergado/goexpress"
)

type goexpressRouter struct {
	handler *goexpress.Router
}

var _ Router = (*goexpressRouter)(nil)

//nolint:ireturn //callers depend on the Router abstraction only.
func NewGoexpressRouter() Router {
	return &goexpressRouter{
		handler: goexpress.New(),
	}
}

func (r *goexpressRouter) Use(middleware Middleware) {
	r.handler.Use(middleware)
}

func (r *goexpressRouter) Get(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.handler.Get(pattern, handler, middlewares...)
}

func (r *goexpressRouter) Post(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.handler.Post(pattern, handler, middlewares...)
}

func (r *goexpressRouter) Put(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.handler.Put(pattern, handler, middlewares...)
}

func (r *goexpressRouter) Patch(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.handler.Patch(pattern, handler, middlewares...)
}

func (r *goexpressRouter) Delete(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.handler.Delete(pattern, handler, middlewares...)
}

func (r *goexpressRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}
