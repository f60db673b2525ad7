package errors

import (
	"errors"
	"fmt"
)

// Common error types for the AlpenLuce client
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrSessionExpired     = errors.New("session expired")

	// Credential errors
	ErrNoRefreshCredential = errors.New("no refresh credential")
	ErrRefreshFailed       = errors.New("credential refresh failed")

	// Mutation errors
	ErrMutationPending      = errors.New("mutation already pending for record")
	ErrRecordNotFound       = errors.New("record not found in collection")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrControllerClosed     = errors.New("controller closed")

	// Catalogue errors
	ErrInactiveGarment = errors.New("garment is not active")

	// Validation errors
	ErrValidation = errors.New("validation failed")

	// General errors
	ErrNotFound    = errors.New("not found")
	ErrInternal    = errors.New("internal error")
	ErrUnsupported = errors.New("unsupported operation")
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
