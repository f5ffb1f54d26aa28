// Package store defines the remote secret store collaborator. The pipeline
// core treats the store as opaque: it can list, set, and delete named
// secrets, and nothing else about transport or persistence leaks through
// the interface.
package store

import "context"

// Store is the opaque secret store surface consumed by the sync planner.
type Store interface {
	// List returns every secret as a name→value map.
	List(ctx context.Context) (map[string]string, error)

	// Set creates or replaces a secret.
	Set(ctx context.Context, key, value string) error

	// Delete removes a secret. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
