// Package web holds the JSON envelope and request-scoped helpers shared by handlers and middleware.
package web

const (
	HeaderContentType = "Content-Type"
	MimeJSON          = "application/json"
)
