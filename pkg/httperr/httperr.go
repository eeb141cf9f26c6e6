// Package httperr defines the error taxonomy shared by all handlers:
// validation, conflict, unauthorized and infrastructure errors, each with a
// stable machine-readable code. Infrastructure detail is logged server-side
// and never echoed to the caller.
package httperr

import (
	"errors"
	"net/http"
)

type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"error"`

	cause error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

var (
	ErrInvalidCredentials = &Error{Status: http.StatusUnauthorized, Code: "invalid_credentials", Message: "invalid email or password"}
	ErrUnauthorized       = &Error{Status: http.StatusUnauthorized, Code: "unauthorized", Message: "unauthorized"}
	ErrInvalidToken       = &Error{Status: http.StatusUnauthorized, Code: "unauthorized", Message: "invalid or expired token"}
	ErrEmailTaken         = &Error{Status: http.StatusBadRequest, Code: "email_taken", Message: "user already registered"}
)

func Validation(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: "validation_error", Message: message}
}

// Internal wraps an infrastructure failure. The cause is kept for server-side
// logging; the client only ever sees the generic message.
func Internal(cause error) *Error {
	return &Error{Status: http.StatusInternalServerError, Code: "internal_error", Message: "internal server error", cause: cause}
}

// From maps any error to the Error the handler should render. Unrecognized
// errors are treated as infrastructure failures.
func From(err error) *Error {
	var he *Error
	if errors.As(err, &he) {
		return he
	}
	return Internal(err)
}
