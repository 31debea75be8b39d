package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/bg3-checklist/internal/domain/entities"
	"github.com/ersonp/bg3-checklist/internal/domain/ports"
	"github.com/ersonp/bg3-checklist/internal/domain/services"
)

// ProgressAction is a change to the completed or hidden set.
type ProgressAction string

// Progress actions.
const (
	ActionComplete   ProgressAction = "complete"
	ActionUncomplete ProgressAction = "uncomplete"
	ActionHide       ProgressAction = "hide"
	ActionUnhide     ProgressAction = "unhide"
)

// ProgressHandler marks items completed or hidden.
type ProgressHandler struct {
	store     ports.CatalogStore
	completed *services.ItemSetStore
	hidden    *services.ItemSetStore
}

// NewProgressHandler creates a new progress handler.
func NewProgressHandler(store ports.CatalogStore, completed, hidden *services.ItemSetStore) *ProgressHandler {
	return &ProgressHandler{
		store:     store,
		completed: completed,
		hidden:    hidden,
	}
}

// ProgressResult lists which IDs the action changed.
type ProgressResult struct {
	Changed   []int
	Unchanged []int
}

// Handle applies action to every id. IDs are checked against the catalog
// before anything is changed.
func (h *ProgressHandler) Handle(ctx context.Context, action ProgressAction, ids []int) (*ProgressResult, error) {
	target, add, err := h.target(action)
	if err != nil {
		return nil, err
	}

	items, err := h.store.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	known := make(services.IDSet, len(items))
	for _, item := range items {
		known[item.ID] = struct{}{}
	}
	for _, id := range ids {
		if !known.Has(id) {
			return nil, fmt.Errorf("%w: %d", entities.ErrUnknownItem, id)
		}
	}

	result := &ProgressResult{}
	for _, id := range ids {
		if target.Contains(id) == add {
			result.Unchanged = append(result.Unchanged, id)
			continue
		}

		if add {
			err = target.Add(ctx, id)
		} else {
			err = target.Remove(ctx, id)
		}
		if err != nil {
			return result, fmt.Errorf("%s item %d: %w", action, id, err)
		}
		result.Changed = append(result.Changed, id)
	}
	return result, nil
}

func (h *ProgressHandler) target(action ProgressAction) (*services.ItemSetStore, bool, error) {
	switch action {
	case ActionComplete:
		return h.completed, true, nil
	case ActionUncomplete:
		return h.completed, false, nil
	case ActionHide:
		return h.hidden, true, nil
	case ActionUnhide:
		return h.hidden, false, nil
	default:
		return nil, false, fmt.Errorf("unknown action %q", action)
	}
}
