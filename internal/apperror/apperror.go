// Package apperror defines the application's error taxonomy. Handlers branch
// on the error kind to decide between an inline message, a login redirect,
// and a generic server error.
package apperror

import (
	"errors"
	"fmt"
)

// Kind categorizes an application error.
type Kind int

const (
	// Storage is any persistence-layer failure.
	Storage Kind = iota
	// DuplicateUsername means registration hit an existing username.
	DuplicateUsername
	// InvalidCredentials means login failed (unknown user or wrong password).
	InvalidCredentials
	// Unauthenticated means a protected route was hit without a valid session.
	Unauthenticated
	// NotFound means a lookup matched no row.
	NotFound
)

// Error carries a kind, a user-facing message, and an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func NewStorage(message string, err error) *Error {
	return New(Storage, message, err)
}

func NewDuplicateUsername(message string) *Error {
	return New(DuplicateUsername, message, nil)
}

func NewInvalidCredentials(message string) *Error {
	return New(InvalidCredentials, message, nil)
}

func NewUnauthenticated(message string) *Error {
	return New(Unauthenticated, message, nil)
}

func NewNotFound(message string) *Error {
	return New(NotFound, message, nil)
}

func is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// IsStorage reports whether err is a persistence failure.
func IsStorage(err error) bool { return is(err, Storage) }

// IsDuplicateUsername reports whether err is a duplicate-username conflict.
func IsDuplicateUsername(err error) bool { return is(err, DuplicateUsername) }

// IsInvalidCredentials reports whether err is a failed credential check.
func IsInvalidCredentials(err error) bool { return is(err, InvalidCredentials) }

// IsUnauthenticated reports whether err is a missing/invalid session.
func IsUnauthenticated(err error) bool { return is(err, Unauthenticated) }

// IsNotFound reports whether err is a missed lookup.
func IsNotFound(err error) bool { return is(err, NotFound) }
