// Package jsonstore persists a whole collection of records as a single
// JSON array file. Every mutation reads the full collection, applies
// the change in memory and rewrites the file before returning, so the
// last writer wins and no buffered state is observable to callers.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Collection is a key-less JSON array file holding records of type T.
// The zero-value file (a missing one) behaves as an empty collection:
// the first List or Update lazily materializes it.
type Collection[T any] struct {
	path string
	mu   sync.Mutex
}

// NewCollection creates a collection backed by the file at path.
// Nothing is touched on disk until the first call.
func NewCollection[T any](path string) *Collection[T] {
	return &Collection[T]{path: path}
}

// List returns every record in the collection. A collection that has
// never been written yields an empty slice, never an error.
func (c *Collection[T]) List() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// Update applies fn to the current records and persists the returned
// slice. fn runs under the collection lock; returning an error from fn
// aborts the update without touching the file.
func (c *Collection[T]) Update(fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return err
	}
	items, err = fn(items)
	if err != nil {
		return err
	}
	return c.write(items)
}

// load reads the collection file, creating an empty one if absent.
// Caller must hold the lock.
func (c *Collection[T]) load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		if err := c.write([]T{}); err != nil {
			return nil, err
		}
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", c.path, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode collection %s: %w", c.path, err)
	}
	return items, nil
}

// write rewrites the whole collection file. Caller must hold the lock.
func (c *Collection[T]) write(items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", c.path, err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory for %s: %w", c.path, err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", c.path, err)
	}
	return nil
}
