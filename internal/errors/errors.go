package errors

import "errors"

// Project state errors indicate issues with project configuration or initialization.
var (
	// ErrProjectNotInitialized indicates the project has not been set up with envsync.
	ErrProjectNotInitialized = errors.New("project has not been initialized")

	// ErrProjectAlreadyInitialized indicates the project has already been set up.
	ErrProjectAlreadyInitialized = errors.New("project has already been initialized")

	// ErrInvalidProjectConfig indicates the project configuration is malformed or corrupt.
	ErrInvalidProjectConfig = errors.New("project configuration is invalid")
)

// File errors indicate issues with env file discovery or access.
var (
	// ErrNoEnvFile indicates no env file could be located.
	ErrNoEnvFile = errors.New("no env file found")

	// ErrMalformedEnvFile indicates an env file line could not be parsed.
	ErrMalformedEnvFile = errors.New("malformed env file")
)

// Store errors indicate issues with the remote secret store collaborator.
var (
	// ErrStoreUnavailable indicates the secret store could not be opened.
	ErrStoreUnavailable = errors.New("secret store unavailable")

	// ErrKeyNotFound indicates the secret key does not exist in the store.
	ErrKeyNotFound = errors.New("secret key not found")
)

// Backup errors indicate issues with backup retention.
var (
	// ErrBackupNotFound indicates the requested backup does not exist.
	ErrBackupNotFound = errors.New("backup not found")
)
