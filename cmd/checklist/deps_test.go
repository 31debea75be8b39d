package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/bg3-checklist/internal/domain/entities"
	"github.com/ersonp/bg3-checklist/internal/infrastructure/config"
)

func TestSheetLocations(t *testing.T) {
	cfg := config.Default()
	cfg.Sheets[2].File = "act3.csv"

	locations := sheetLocations(cfg)

	require.Len(t, locations, 3)
	assert.Equal(t, config.DefaultSheetBaseURL+"0", locations[entities.Act1].URL)
	assert.Equal(t, "act3.csv", locations[entities.Act3].File)
}

func TestOpenStateBackend(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		path    string
	}{
		{name: "sqlite", backend: config.BackendSQLite, path: "nested/state.db"},
		{name: "file", backend: config.BackendFile, path: "state"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.State = config.StateConfig{
				Backend: tt.backend,
				Path:    filepath.Join(t.TempDir(), tt.path),
			}

			backend, err := openStateBackend(t.Context(), cfg)
			require.NoError(t, err)
			defer backend.Close()

			require.NoError(t, backend.Save(t.Context(), "hidden-items-storage", []byte("[2]")))
			data, found, err := backend.Load(t.Context(), "hidden-items-storage")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, "[2]", string(data))
		})
	}
}
