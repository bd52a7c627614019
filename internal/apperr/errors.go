// Package apperr defines the sentinel errors shared across the board.
package apperr

import "errors"

var (
	ErrDuplicateUser     = errors.New("duplicate user")
	ErrAuthFailure       = errors.New("authentication failure")
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrMalformedDocument = errors.New("malformed document")
)
