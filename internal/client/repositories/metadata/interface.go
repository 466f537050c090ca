// Package metadata is a small key/value store in the client database. It
// holds the last-sync summary, cached session tokens, and the offline-unlock
// verifier.
package metadata

import (
	"context"
)

type Repository interface {
	// Get returns the stored value, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
