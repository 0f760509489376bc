package router

import "net/http"

type Middleware = func(next http.Handler) http.Handler

// Router registers handlers by method and Go 1.22 path pattern, so path
// parameters are read with (*http.Request).PathValue.
type Router interface {
	http.Handler

	Use(middleware Middleware)
	Get(pattern string, handler http.HandlerFunc, middlewares ...Middleware)
	Post(pattern string, handler http.HandlerFunc, middlewares ...Middleware)
	Put(pattern string, handler http.HandlerFunc, middlewares ...Middleware)
	Patch(pattern string, handler http.HandlerFunc, middlewares ...Middleware)
	Delete(pattern string, handler http.HandlerFunc, middlewares ...Middleware)
}
