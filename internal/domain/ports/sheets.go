// Package ports defines interfaces for external service communication.
package ports

import (
	"context"

	"github.com/ersonp/bg3-checklist/internal/domain/entities"
)

// SheetSource provides the raw rows of one act's sheet.
type SheetSource interface {
	// Fetch returns the sheet rows for the act. Rows may be ragged.
	Fetch(ctx context.Context, act entities.Act) ([][]string, error)
}
