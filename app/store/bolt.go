package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"
)

const kvBktName = "kv"

// Bolt is a KV storage that uses BoltDB as a backend.
type Bolt struct {
	db *bolt.DB
}

// NewBolt creates new Bolt storage in the given file.
func NewBolt(file string) (*Bolt, error) {
	if err := os.MkdirAll(filepath.Dir(file), 0o700); err != nil {
		return nil, fmt.Errorf("make dir for %s: %w", file, err)
	}

	db, err := bolt.Open(file, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to make boltdb for %s: %w", file, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(kvBktName)); err != nil {
			return fmt.Errorf("create top-level bucket %s: %w", kvBktName, err)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("make buckets: %w", err)
	}

	return &Bolt{db: db}, nil
}

// Get returns the value stored under the key.
func (b *Bolt) Get(_ context.Context, key string) (value string, err error) {
	err = b.db.View(func(tx *bolt.Tx) error {
		bts := tx.Bucket([]byte(kvBktName)).Get([]byte(key))
		if bts == nil {
			return ErrNotFound
		}

		value = string(bts)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("view storage: %w", err)
	}

	return value, nil
}

// Set puts the value under the key.
func (b *Bolt) Set(_ context.Context, key, value string) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket([]byte(kvBktName)).Put([]byte(key), []byte(value)); err != nil {
			return fmt.Errorf("put %s to storage: %w", key, err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("update storage: %w", err)
	}

	return nil
}

// Remove deletes the key from storage.
func (b *Bolt) Remove(_ context.Context, key string) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket([]byte(kvBktName)).Delete([]byte(key)); err != nil {
			return fmt.Errorf("remove: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("update storage: %w", err)
	}

	return nil
}

// Close closes the storage.
func (b *Bolt) Close() error { return b.db.Close() }
