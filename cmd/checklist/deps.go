package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ersonp/bg3-checklist/internal/application/handlers"
	"github.com/ersonp/bg3-checklist/internal/domain/entities"
	"github.com/ersonp/bg3-checklist/internal/domain/ports"
	"github.com/ersonp/bg3-checklist/internal/domain/services"
	"github.com/ersonp/bg3-checklist/internal/infrastructure/artifacts"
	"github.com/ersonp/bg3-checklist/internal/infrastructure/config"
	"github.com/ersonp/bg3-checklist/internal/infrastructure/logging"
	"github.com/ersonp/bg3-checklist/internal/infrastructure/sheets"
	statefile "github.com/ersonp/bg3-checklist/internal/infrastructure/statedb/file"
	"github.com/ersonp/bg3-checklist/internal/infrastructure/statedb/sqlite"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and repositories are internal.
type Deps struct {
	Config          *config.Config
	GenerateHandler *handlers.GenerateHandler
	ItemsHandler    *handlers.ItemsHandler
	ProgressHandler *handlers.ProgressHandler
	BuildsHandler   *handlers.BuildsHandler
}

// withDeps loads config and builds dependencies, then calls the provided function.
// It handles cleanup automatically.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := cfg.LogLevel
	if globalVerbose {
		level = "debug"
	}
	if err := logging.Setup(level, os.Stderr); err != nil {
		return err
	}

	backend, err := openStateBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer backend.Close()

	equipment, err := artifacts.LoadBuildEquipment(cfg.BuildsFile)
	if err != nil {
		return fmt.Errorf("loading builds: %w", err)
	}

	completed, err := services.LoadItemSetStore(ctx, backend, services.CompletedItemsKey)
	if err != nil {
		return err
	}
	hidden, err := services.LoadItemSetStore(ctx, backend, services.HiddenItemsKey)
	if err != nil {
		return err
	}
	builds, err := services.LoadBuildsStore(ctx, backend, equipment.BuildNames())
	if err != nil {
		return err
	}

	store := artifacts.NewStore(cfg.DataDir)
	source := sheets.NewSource(sheetLocations(cfg), nil)
	catalogService := services.NewCatalogService(source, cfg.CarryOverNames)
	viewService := services.NewViewService(equipment)

	deps := &Deps{
		Config:          cfg,
		GenerateHandler: handlers.NewGenerateHandler(catalogService, store),
		ItemsHandler:    handlers.NewItemsHandler(store, viewService, completed, hidden, builds),
		ProgressHandler: handlers.NewProgressHandler(store, completed, hidden),
		BuildsHandler:   handlers.NewBuildsHandler(equipment, builds),
	}

	return fn(deps)
}

// openStateBackend opens the configured client state backend.
func openStateBackend(ctx context.Context, cfg *config.Config) (ports.StateBackend, error) {
	path := cfg.StatePath()

	switch cfg.State.Backend {
	case config.BackendFile:
		backend, err := statefile.NewBackend(path)
		if err != nil {
			return nil, fmt.Errorf("opening state directory: %w", err)
		}
		return backend, nil
	default:
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating state directory: %w", err)
		}
		repo, err := sqlite.NewRepository(ctx, config.StateConfig{Backend: config.BackendSQLite, Path: path})
		if err != nil {
			return nil, fmt.Errorf("creating sqlite repository: %w", err)
		}
		return repo, nil
	}
}

func sheetLocations(cfg *config.Config) map[entities.Act]sheets.Location {
	locations := make(map[entities.Act]sheets.Location, len(cfg.Sheets))
	for _, s := range cfg.Sheets {
		locations[entities.Act(s.Act)] = sheets.Location{URL: s.URL, File: s.File}
	}
	return locations
}
