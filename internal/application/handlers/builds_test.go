package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/bg3-checklist/internal/domain/entities"
	"github.com/ersonp/bg3-checklist/internal/domain/services"
)

func TestBuildsHandler_List(t *testing.T) {
	f := newFixture(t)
	handler := NewBuildsHandler(f.equipment, f.builds)

	assert.Equal(t, []BuildStatus{
		{Name: "Arcane Archer", Active: true, Items: 1},
		{Name: "Tavern Brawler", Active: true, Items: 2},
	}, handler.List())
}

func TestBuildsHandler_Toggle(t *testing.T) {
	f := newFixture(t)
	handler := NewBuildsHandler(f.equipment, f.builds)
	ctx := t.Context()

	active, err := handler.Toggle(ctx, "Arcane Archer")
	require.NoError(t, err)
	assert.False(t, active)
	assert.Equal(t, `["Tavern Brawler"]`, string(f.backend.Blobs[services.ActiveBuildsKey]))

	active, err = handler.Toggle(ctx, "Arcane Archer")
	require.NoError(t, err)
	assert.True(t, active)
}

func TestBuildsHandler_Toggle_UnknownBuild(t *testing.T) {
	f := newFixture(t)
	handler := NewBuildsHandler(f.equipment, f.builds)

	t.Run("with suggestion", func(t *testing.T) {
		_, err := handler.Toggle(t.Context(), "Tavern Brawer")
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrUnknownBuild)
		assert.Contains(t, err.Error(), `did you mean "Tavern Brawler"`)
	})

	t.Run("without suggestion", func(t *testing.T) {
		_, err := handler.Toggle(t.Context(), "Zzz")
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrUnknownBuild)
		assert.NotContains(t, err.Error(), "did you mean")
	})

	assert.Zero(t, f.backend.SaveCallCount)
}

func TestBuildsHandler_EnableDisableAll(t *testing.T) {
	f := newFixture(t)
	handler := NewBuildsHandler(f.equipment, f.builds)
	ctx := t.Context()

	require.NoError(t, handler.DisableAll(ctx))
	for _, status := range handler.List() {
		assert.False(t, status.Active)
	}
	assert.Equal(t, "[]", string(f.backend.Blobs[services.ActiveBuildsKey]))

	require.NoError(t, handler.EnableAll(ctx))
	for _, status := range handler.List() {
		assert.True(t, status.Active)
	}
}

func TestNewBuildsHandler_NilEquipment(t *testing.T) {
	f := newFixture(t)
	handler := NewBuildsHandler(nil, f.builds)

	assert.Empty(t, handler.List())
}
