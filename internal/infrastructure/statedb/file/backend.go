// Package file provides a StateBackend that keeps each blob in its own JSON file.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Backend implements ports.StateBackend on a directory.
type Backend struct {
	dir string
	mu  sync.Mutex
}

// NewBackend creates the directory if needed.
func NewBackend(dir string) (*Backend, error) {
	if dir == "" {
		return nil, errors.New("state directory is required")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}
	return &Backend{dir: dir}, nil
}

func (b *Backend) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

// Load returns the blob stored under key.
func (b *Backend) Load(_ context.Context, key string) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, err := os.ReadFile(b.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading state %s: %w", key, err)
	}
	return data, true, nil
}

// Save writes the blob through a temporary file and renames it into place.
func (b *Backend) Save(_ context.Context, key string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	target := b.path(key)
	tmp := target + ".tmp"

	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("writing state %s: %w", key, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing state %s: %w", key, err)
	}
	return nil
}

// Close is a no-op.
func (b *Backend) Close() error {
	return nil
}
