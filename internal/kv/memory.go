// ABOUTME: In-memory KV implementation for testing
// ABOUTME: Allows tests to run without SQLite and to inject slot corruption

package kv

import (
	"context"
	"sync"
)

// Memory is an in-memory KV implementation for tests and ephemeral runs.
// Tests can pre-seed or overwrite slots directly to simulate external
// corruption of the medium.
type Memory struct {
	mu    sync.RWMutex
	slots map[string]string

	// FailWrites makes Set return ErrWriteFailed, simulating a full or
	// inaccessible medium.
	FailWrites bool
}

// ErrWriteFailed is returned by Memory.Set when FailWrites is enabled.
var ErrWriteFailed = errWriteFailed{}

type errWriteFailed struct{}

func (errWriteFailed) Error() string { return "kv: write failed" }

// NewMemory creates an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{slots: make(map[string]string)}
}

// Get returns the value stored under key.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.slots[key]
	return value, ok, nil
}

// Set stores value under key.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return ErrWriteFailed
	}
	m.slots[key] = value
	return nil
}

// Delete removes the slot for key.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, key)
	return nil
}

// Close is a no-op for the in-memory medium.
func (m *Memory) Close() error { return nil }

// Len returns the number of populated slots. Test helper.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.slots)
}

// Ensure Memory implements the KV interface.
var _ KV = (*Memory)(nil)
