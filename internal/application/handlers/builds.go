package handlers

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ersonp/bg3-checklist/internal/domain/entities"
	"github.com/ersonp/bg3-checklist/internal/domain/services"
)

// BuildsHandler manages which builds are active.
type BuildsHandler struct {
	equipment *entities.BuildEquipment
	store     *services.BuildsStore
}

// NewBuildsHandler creates a new builds handler.
func NewBuildsHandler(equipment *entities.BuildEquipment, store *services.BuildsStore) *BuildsHandler {
	if equipment == nil {
		equipment = entities.EmptyBuildEquipment()
	}
	return &BuildsHandler{
		equipment: equipment,
		store:     store,
	}
}

// BuildStatus describes one known build.
type BuildStatus struct {
	Name   string
	Active bool
	Items  int
}

// List returns every known build, sorted by name.
func (h *BuildsHandler) List() []BuildStatus {
	names := h.equipment.BuildNames()
	out := make([]BuildStatus, 0, len(names))
	for _, name := range names {
		out = append(out, BuildStatus{
			Name:   name,
			Active: h.store.IsActive(name),
			Items:  len(h.equipment.ItemsByBuild[name]),
		})
	}
	return out
}

// Toggle flips a known build and returns whether it is now active.
func (h *BuildsHandler) Toggle(ctx context.Context, name string) (bool, error) {
	if !h.equipment.HasBuild(name) {
		suggestion := h.store.Suggest(name)
		log.Warn().Str("build", name).Str("suggestion", suggestion).Msg("unknown build")
		if suggestion != "" {
			return false, fmt.Errorf("%w %q (did you mean %q?)", entities.ErrUnknownBuild, name, suggestion)
		}
		return false, fmt.Errorf("%w %q", entities.ErrUnknownBuild, name)
	}

	active, err := h.store.Toggle(ctx, name)
	if err != nil {
		return active, fmt.Errorf("toggling build: %w", err)
	}
	return active, nil
}

// EnableAll activates every known build.
func (h *BuildsHandler) EnableAll(ctx context.Context) error {
	if err := h.store.EnableAll(ctx); err != nil {
		return fmt.Errorf("enabling builds: %w", err)
	}
	return nil
}

// DisableAll deactivates every build.
func (h *BuildsHandler) DisableAll(ctx context.Context) error {
	if err := h.store.DisableAll(ctx); err != nil {
		return fmt.Errorf("disabling builds: %w", err)
	}
	return nil
}
