// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"fmt"

	"github.com/ersonp/bg3-checklist/internal/domain/entities"
)

// SheetSource is a mock implementation of ports.SheetSource.
type SheetSource struct {
	Rows map[entities.Act][][]string
	Err  error

	// ErrForAct fails only the given act.
	ErrForAct entities.Act

	FetchCallCount int
}

// Fetch returns the configured rows for the act.
func (m *SheetSource) Fetch(_ context.Context, act entities.Act) ([][]string, error) {
	m.FetchCallCount++
	if m.Err != nil && (m.ErrForAct == 0 || m.ErrForAct == act) {
		return nil, fmt.Errorf("fetching act %d: %w", act, m.Err)
	}
	return m.Rows[act], nil
}
