// Package errors provides typed error values for the envsync application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
//   - Project errors: project state issues (ErrProjectNotInitialized)
//   - File errors: env file discovery and access (ErrNoEnvFile)
//   - Store errors: remote secret store access (ErrStoreUnavailable)
//   - Backup errors: backup retention issues (ErrBackupNotFound)
//
// # Usage
//
// Return errors from internal packages:
//
//	if root == "" {
//	    return nil, errors.ErrProjectNotInitialized
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("loading %s: %w", path, errors.ErrNoEnvFile)
package errors
