// Package storage implements the client's durable key/value store, backed
// by a local sqlite database. The session token lives here between runs.
package storage

import "context"

// Repository is a small key/value contract over the local database.
// Get returns (nil, nil) for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
