// Package apierrors defines the error taxonomy exposed to API callers.
// Every failure a client may act on is an *APIError carrying the HTTP
// status it maps to; anything else surfaces as an internal server error.
package apierrors

import (
	"fmt"
	"net/http"
)

// APIError is a caller-visible error with an HTTP status code.
type APIError struct {
	HTTPCode int
	Message  string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewErrMissingFields reports absent or empty required request fields.
func NewErrMissingFields(fields string) *APIError {
	return &APIError{
		HTTPCode: http.StatusBadRequest,
		Message:  fmt.Sprintf("missing required fields: %s", fields),
	}
}

// NewErrUserNotFound reports that no user matches the given reference.
func NewErrUserNotFound() *APIError {
	return &APIError{
		HTTPCode: http.StatusNotFound,
		Message:  "user not found",
	}
}

// NewErrPostNotFound reports that no post matches the given id for the
// requesting user. A missing post and a post owned by someone else are
// deliberately indistinguishable.
func NewErrPostNotFound() *APIError {
	return &APIError{
		HTTPCode: http.StatusNotFound,
		Message:  "post not found or does not belong to the user",
	}
}

// NewErrEmailIsTaken reports a signup against an already registered email.
func NewErrEmailIsTaken() *APIError {
	return &APIError{
		HTTPCode: http.StatusConflict,
		Message:  "email already in use",
	}
}

// NewErrIncorrectPassword reports a failed password verification.
func NewErrIncorrectPassword() *APIError {
	return &APIError{
		HTTPCode: http.StatusUnauthorized,
		Message:  "incorrect password",
	}
}

// NewErrInternalServerError wraps an unexpected failure without leaking
// its details to the caller.
func NewErrInternalServerError() *APIError {
	return &APIError{
		HTTPCode: http.StatusInternalServerError,
		Message:  "internal server error",
	}
}

// NewErrUpstreamUnavailable reports a transient upstream failure the
// caller may retry, as opposed to a hard internal error.
func NewErrUpstreamUnavailable() *APIError {
	return &APIError{
		HTTPCode: http.StatusBadGateway,
		Message:  "service temporarily unavailable, try again later",
	}
}
