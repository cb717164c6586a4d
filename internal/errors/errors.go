package errors

import (
	"errors"
	"fmt"
)

// Common error types for the session server
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Cookie errors
	ErrMalformedCookie = errors.New("malformed cookie pair")

	// Session errors
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionExpired   = errors.New("session expired")
	ErrDuplicateSession = errors.New("session id already in use")
	ErrEmptyUsername    = errors.New("username is required")

	// General errors
	ErrInvalidRequest = errors.New("invalid request")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
