package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/bg3-checklist/internal/infrastructure/config"
)

func TestInitHandler_Handle_Success(t *testing.T) {
	tmpDir := t.TempDir()

	handler := NewInitHandler()

	result, err := handler.Handle(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Contains(t, result.ConfigPath, "config.yaml")
	assert.DirExists(t, result.DataDir)

	// Verify config was created
	assert.True(t, config.Exists(tmpDir))
}

func TestInitHandler_Handle_AlreadyInitialized(t *testing.T) {
	tmpDir := t.TempDir()

	// Initialize first
	err := config.WriteDefault(tmpDir)
	require.NoError(t, err)

	handler := NewInitHandler()

	result, err := handler.Handle(tmpDir)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "already initialized")
}
