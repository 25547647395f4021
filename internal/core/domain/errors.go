package domain

import "errors"

// Domain errors - used across all layers
var (
	// ErrAccountNotFound indicates no account exists for the given key
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidCredentials indicates a failed login. Login deliberately
	// collapses unknown-username into this error so callers cannot
	// enumerate usernames.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidInput indicates the input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrStoreUnavailable indicates the account store could not serve the
	// operation. Fatal to the calling operation; retry policy belongs to
	// the store, not this layer.
	ErrStoreUnavailable = errors.New("account store unavailable")

	// ErrInvalidPermission indicates an unknown permission type string
	ErrInvalidPermission = errors.New("invalid permission type")
)
