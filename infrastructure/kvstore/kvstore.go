// Package kvstore abstracts the durable key-value storage the local
// providers persist into. Values are opaque byte slices; callers own
// the serialization.
package kvstore

import "context"

// Store is a durable key-value store. Get reports a missing key
// through the second return value, not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
