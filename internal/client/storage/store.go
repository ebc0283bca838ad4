// Package storage implements the client's persisted key-value store: a flat,
// durable string-to-string mapping that survives restarts. All user records,
// the session pointer, the remember-me slot and the alarm list live here
// under the key builders in the models package.
package storage

import "context"

// Store is the flat key-value surface the managers talk to.
// There is no schema enforcement; values are opaque strings.
type Store interface {
	// Get returns the value for key. found is false when the key is absent.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set upserts the value for key.
	Set(ctx context.Context, key string, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns every key-value pair.
	List(ctx context.Context) (map[string]string, error)

	// Clear removes everything.
	Clear(ctx context.Context) error
}
