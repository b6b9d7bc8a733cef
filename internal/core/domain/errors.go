package domain

import (
	"errors"
	"strings"
)

var (
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrInvalidToken       = errors.New("token is not valid")
	ErrForbidden          = errors.New("not authorized")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")

	ErrUserNotFound     = errors.New("user is not found")
	ErrPropertyNotFound = errors.New("property is not found")
	ErrRoomNotFound     = errors.New("room is not found")
)

// ValidationError lists every field that failed request validation.
type ValidationError struct {
	Fields []string
}

func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Fields, "; ")
}
