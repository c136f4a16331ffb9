// Package domainerrors defines the error taxonomy shared by services and the
// HTTP layer. Services create errors with a Code; transport translates the
// Code into a status via ToHTTPStatus and never inspects messages.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies an error kind independent of transport.
type Code string

const (
	// CodeUnauthorized: no identity present where one is required.
	CodeUnauthorized Code = "unauthorized"
	// CodeForbidden: identity present but not allowed to perform the operation.
	CodeForbidden Code = "forbidden"
	// CodeNotFound: referenced entity does not exist.
	CodeNotFound Code = "not_found"
	// CodeConflict: operation violates a uniqueness constraint.
	CodeConflict Code = "conflict"
	// CodeBadRequest: validation failure after payload sanitization.
	CodeBadRequest Code = "bad_request"
	// CodeInternal: unexpected failure, including store failures.
	CodeInternal Code = "internal_error"
)

// Error carries a Code plus a human-readable description. The description is
// safe to return to callers except for CodeInternal, where transport omits it.
type Error struct {
	Code    Code
	Message string
	wrapped error
}

func (e *Error) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.wrapped }

// New creates a domain error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error, preserving the
// chain for errors.Is / errors.As.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, wrapped: err}
}

// HasCode reports whether err (or anything it wraps) is a domain error with
// the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal for errors
// that did not originate in a service.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// ToHTTPStatus maps an error code onto the status contract expected by the
// routing layer.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
