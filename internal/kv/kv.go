// ABOUTME: KV interface for the string key/value medium backing the store
// ABOUTME: Defines Get/Set/Delete over named slots holding opaque text values

package kv

import "context"

// KV is the persistence medium the store writes through. It is a flat
// namespace of string slots holding opaque text values. Implementations
// make no guarantees about the contents of a slot: values may have been
// corrupted or replaced externally, and callers must validate what they
// read back.
type KV interface {
	// Get returns the value stored under key. The second return value is
	// false when the slot does not exist.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes the slot for key. Deleting an absent slot is not an
	// error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the medium.
	Close() error
}
