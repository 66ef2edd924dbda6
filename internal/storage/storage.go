// Package storage provides the asynchronous key-to-string store boundary
// the game core persists through. Backends are interchangeable: an
// in-memory map, a directory of files written atomically, or a SQLite
// database. Every backend is assumed able to fail or hang, so consumers
// wrap it in Bounded, which enforces the shared persistence deadline.
package storage

import "context"

// Store is an opaque key-value string store. Get reports presence
// explicitly: a missing key is (value "", found false, err nil), not an
// error.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
