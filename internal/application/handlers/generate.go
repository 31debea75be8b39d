package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ersonp/bg3-checklist/internal/domain/entities"
	"github.com/ersonp/bg3-checklist/internal/domain/ports"
	"github.com/ersonp/bg3-checklist/internal/domain/services"
)

// GenerateHandler turns the act sheets into catalog artifacts.
type GenerateHandler struct {
	catalogService *services.CatalogService
	store          ports.CatalogStore
}

// NewGenerateHandler creates a new generate handler.
func NewGenerateHandler(catalogService *services.CatalogService, store ports.CatalogStore) *GenerateHandler {
	return &GenerateHandler{
		catalogService: catalogService,
		store:          store,
	}
}

// GenerateOptions controls generation behavior.
type GenerateOptions struct {
	DryRun bool // Parse and validate without writing artifacts
}

// GenerateResult contains the result of a generation run.
// Previous is the manifest of the catalog in place before the run, if any.
type GenerateResult struct {
	Counts   map[entities.Act]int
	Total    int
	Warnings []services.DriftWarning
	Previous *ports.Manifest
	Written  bool
}

// Handle fetches and parses every act, then writes the artifacts.
// Nothing is published unless all acts were parsed and saved.
func (h *GenerateHandler) Handle(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	catalog, err := h.catalogService.Generate(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("generating catalog: %w", err)
	}

	result := &GenerateResult{
		Counts:   make(map[entities.Act]int, len(catalog.Acts)),
		Total:    catalog.Count(),
		Warnings: catalog.Warnings,
	}
	for act, items := range catalog.Acts {
		result.Counts[act] = len(items)
	}

	warnings := make([]string, 0, len(catalog.Warnings))
	for _, w := range catalog.Warnings {
		log.Warn().
			Int("act", int(w.Act)).
			Str("name", w.Name).
			Str("kind", string(w.Kind)).
			Str("suggestion", w.Suggestion).
			Msg("sheet and parsed items disagree")
		warnings = append(warnings, w.String())
	}

	previous, err := h.store.LoadManifest()
	switch {
	case err == nil:
		result.Previous = previous
	case !errors.Is(err, entities.ErrCatalogNotFound):
		log.Warn().Err(err).Msg("previous manifest unreadable")
	}

	if opts.DryRun {
		log.Debug().Int("items", result.Total).Msg("dry run, artifacts not written")
		return result, nil
	}

	if err := h.store.Discard(); err != nil {
		return nil, fmt.Errorf("clearing staged catalog: %w", err)
	}
	if err := h.save(catalog, result.Counts, warnings); err != nil {
		if discardErr := h.store.Discard(); discardErr != nil {
			log.Warn().Err(discardErr).Msg("staged catalog not removed")
		}
		return nil, err
	}
	if err := h.store.Commit(); err != nil {
		return nil, fmt.Errorf("publishing catalog: %w", err)
	}

	result.Written = true
	log.Info().Int("items", result.Total).Int("warnings", len(warnings)).Msg("catalog generated")
	return result, nil
}

func (h *GenerateHandler) save(catalog *services.CatalogResult, counts map[entities.Act]int, warnings []string) error {
	for _, act := range entities.AllActs {
		if err := h.store.SaveAct(act, catalog.Acts[act]); err != nil {
			return fmt.Errorf("saving act %d: %w", act, err)
		}
	}
	if err := h.store.SaveHints(catalog.Hints); err != nil {
		return fmt.Errorf("saving hints: %w", err)
	}
	if err := h.store.SaveManifest(ports.Manifest{
		Acts:     counts,
		Warnings: warnings,
	}); err != nil {
		return fmt.Errorf("saving manifest: %w", err)
	}
	return nil
}
