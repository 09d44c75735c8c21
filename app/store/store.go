// Package store contains models of the application and the key-value
// persistence they are kept in.
package store

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is an error that is returned when the requested entity is not found.
var ErrNotFound = errors.New("not found")

// KV defines a flat string key-value storage.
// Values are JSON documents, there are no transactions between keys.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

var (
	_ KV = (*Bolt)(nil)
	_ KV = (*Memory)(nil)
)

// Memory is an in-memory KV, primarily for tests and dry runs.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory makes a new empty Memory storage.
func NewMemory() *Memory {
	return &Memory{data: map[string]string{}}
}

// Get returns the value for the key.
func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set puts the value under the key.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Remove deletes the key. Removing a missing key is not an error.
func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
