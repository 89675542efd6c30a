// Package server provides the BrandCraft HTTP REST API.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/brandcraft/internal/db"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrUsernameTaken indicates the username is already in use
type ErrUsernameTaken struct {
	Username string
}

func (e *ErrUsernameTaken) Error() string {
	return fmt.Sprintf("username already taken: %s", e.Username)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrAccountSuspended indicates the account was deactivated by an administrator
type ErrAccountSuspended struct{}

func (e *ErrAccountSuspended) Error() string {
	return "account suspended"
}

// ErrNotFound indicates a resource is missing or not visible to the caller
type ErrNotFound struct {
	Resource string
}

func (e *ErrNotFound) Error() string {
	return e.Resource + " not found"
}

// ErrForbidden indicates the caller lacks the required role
type ErrForbidden struct {
	Reason string
}

func (e *ErrForbidden) Error() string {
	return e.Reason
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		emailExists   *ErrEmailAlreadyExists
		usernameTaken *ErrUsernameTaken
		invalidCreds  *ErrInvalidCredentials
		suspended     *ErrAccountSuspended
		notFound      *ErrNotFound
		forbidden     *ErrForbidden
		validation    *ErrValidation
	)
	switch {
	case errors.As(err, &emailExists), errors.As(err, &usernameTaken):
		return http.StatusConflict
	case errors.As(err, &invalidCreds):
		return http.StatusUnauthorized
	case errors.As(err, &suspended), errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &notFound), errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
