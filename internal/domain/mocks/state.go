package mocks

import "context"

// StateBackend is an in-memory mock implementation of ports.StateBackend.
type StateBackend struct {
	Blobs   map[string][]byte
	LoadErr error
	SaveErr error

	SaveCallCount int
	Closed        bool
}

// NewStateBackend creates an empty mock backend.
func NewStateBackend() *StateBackend {
	return &StateBackend{Blobs: make(map[string][]byte)}
}

// Load returns the stored blob.
func (m *StateBackend) Load(_ context.Context, key string) ([]byte, bool, error) {
	if m.LoadErr != nil {
		return nil, false, m.LoadErr
	}
	data, ok := m.Blobs[key]
	return data, ok, nil
}

// Save stores a copy of the blob.
func (m *StateBackend) Save(_ context.Context, key string, data []byte) error {
	m.SaveCallCount++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if m.Blobs == nil {
		m.Blobs = make(map[string][]byte)
	}
	m.Blobs[key] = append([]byte(nil), data...)
	return nil
}

// Close marks the backend closed.
func (m *StateBackend) Close() error {
	m.Closed = true
	return nil
}
