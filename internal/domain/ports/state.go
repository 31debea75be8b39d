package ports

import "context"

// StateBackend persists named blobs of client state.
// The three stores (completed items, hidden items, active builds) each own one key.
type StateBackend interface {
	// Load returns the blob stored under key. found is false if nothing was stored yet.
	Load(ctx context.Context, key string) (data []byte, found bool, err error)

	// Save replaces the blob stored under key.
	Save(ctx context.Context, key string, data []byte) error

	// Close releases the backend.
	Close() error
}
