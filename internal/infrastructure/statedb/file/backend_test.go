package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBackend(t *testing.T) {
	t.Run("creates directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "state")
		_, err := NewBackend(dir)
		require.NoError(t, err)
		assert.DirExists(t, dir)
	})

	t.Run("empty dir", func(t *testing.T) {
		_, err := NewBackend("")
		require.Error(t, err)
	})
}

func TestBackend_LoadSave(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	backend, err := NewBackend(dir)
	require.NoError(t, err)

	_, found, err := backend.Load(ctx, "builds-storage")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, backend.Save(ctx, "builds-storage", []byte(`["Arcane Archer"]`)))

	data, found, err := backend.Load(ctx, "builds-storage")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `["Arcane Archer"]`, string(data))

	assert.FileExists(t, filepath.Join(dir, "builds-storage.json"))
	_, err = os.Stat(filepath.Join(dir, "builds-storage.json.tmp"))
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, backend.Close())
}
