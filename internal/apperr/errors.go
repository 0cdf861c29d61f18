// Package apperr holds the error kinds every operation is mapped to before a
// response leaves the process.
//
// Errors are wrapped with context using fmt.Errorf("%w") and checked with
// errors.Is:
//
//	if post.AuthorID != callerID {
//	    return fmt.Errorf("delete post %s: %w", post.ID, apperr.ErrForbidden)
//	}
package apperr

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidInput: malformed or missing fields, wrong file type or size.
	// HTTP Status: 400 Bad Request
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized: missing, invalid or expired session, or wrong password.
	// HTTP Status: 401 Unauthorized
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden: authenticated but not the owner of the resource.
	// HTTP Status: 403 Forbidden
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound: no such user or post.
	// HTTP Status: 404 Not Found
	ErrNotFound = errors.New("not found")

	// ErrConflict: email or username already registered.
	// HTTP Status: 400 Bad Request
	ErrConflict = errors.New("already exists")
)

// Status returns the HTTP status for err. Unknown errors are internal faults.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Code returns the stable machine-readable code for err.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "internal_error"
	}
}

// IsInternal reports whether err falls outside the known kinds.
func IsInternal(err error) bool {
	return Status(err) == http.StatusInternalServerError
}
