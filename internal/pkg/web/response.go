package web

import (
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/gopherkit/http/response"
)

// OKResponse represents the structure of a JSON-encoded success response.
//
// The Data field is omitted from the response if it is nil.
type OKResponse[T any] struct {
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
}

// ErrorResponse represents the structure of a JSON-encoded error response.
//
// It includes a general error message and, optionally, a map of field-level
// validation errors.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// OK writes a JSON-encoded success response to w with the provided HTTP status code.
//
// If msg is non-nil, its value is included under the "message" field.
// If data is non-nil, it is included under the "data" field.
//
// The JSON response has the form:
//
//	{
//	  "message": "User created.",
//	  "data": {
//	    "id": "3d594650-3436-11e5-bf21-0800200c9a67",
//	    "name": "Ana"
//	  }
//	}
func OK[T any](w http.ResponseWriter, status int, msg *string, data *T) {
	payload := &OKResponse[*T]{}
	if msg != nil {
		payload.Message = *msg
	}

	if data != nil {
		payload.Data = data
	}

	response.JSON(w, status, payload)
}

// Fail writes a JSON-encoded error response to w with the provided HTTP status code.
//
// The reason is logged at Error level under the key "reason" and never sent
// to the client; msg and errs are.
func Fail(w http.ResponseWriter, status int, reason error, msg string, errs map[string]string) {
	slog.Error("request failed", "status", status, "reason", reason)
	payload := &ErrorResponse{
		Message: msg,
		Errors:  errs,
	}
	response.JSON(w, status, payload)
}
