package repository

import "context"

// KeyValueStore persists whole documents keyed by name. A Set replaces the
// previous value for the key atomically.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
