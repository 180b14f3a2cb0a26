package domain

import (
	"errors"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var (
	MessageUserNotAllowed       = "user not allowed"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "invalid token"

	// Error kinds. Every feature error unwraps to exactly one of these and the
	// presenters derive the HTTP status from it.
	ErrValidation      = errors.New("validation failed")
	ErrUnauthenticated = errors.New("authentication failed")
	ErrNotFound        = errors.New("not found")

	ErrParseID        = NewNotFoundError("invalid identifier")
	ErrUserNotAllowed = NewUnauthenticatedError("user not allowed")
	ErrTokenNotFound  = NewUnauthenticatedError("authentication credentials were not provided")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

func NewValidationError(msg string) error {
	return &kindError{kind: ErrValidation, msg: msg}
}

func NewUnauthenticatedError(msg string) error {
	return &kindError{kind: ErrUnauthenticated, msg: msg}
}

func NewNotFoundError(msg string) error {
	return &kindError{kind: ErrNotFound, msg: msg}
}
