package common

import "errors"

var (
	// ErrNotFound signals an id lookup miss.
	ErrNotFound = errors.New("record not found")
	// ErrConflict signals a uniqueness or referential violation.
	ErrConflict = errors.New("conflict")
	// ErrValidation signals a rejected request payload.
	ErrValidation = errors.New("validation failed")
	// ErrUnauthorized signals bad credentials.
	ErrUnauthorized = errors.New("unauthorized")
)
