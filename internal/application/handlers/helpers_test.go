package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ersonp/bg3-checklist/internal/domain/entities"
	"github.com/ersonp/bg3-checklist/internal/domain/mocks"
	"github.com/ersonp/bg3-checklist/internal/domain/services"
)

// fixture wires the handlers over in-memory mocks.
type fixture struct {
	catalog   *mocks.CatalogStore
	backend   *mocks.StateBackend
	equipment *entities.BuildEquipment
	completed *services.ItemSetStore
	hidden    *services.ItemSetStore
	builds    *services.BuildsStore
}

func testEquipment() *entities.BuildEquipment {
	return &entities.BuildEquipment{
		ItemsByBuild: map[string][]string{
			"Tavern Brawler": {"Phalar Aluve", "Gloves of Cinder"},
			"Arcane Archer":  {"Titanstring Bow"},
		},
		BuildsByItem: map[string][]string{
			"Phalar Aluve":     {"Tavern Brawler"},
			"Gloves of Cinder": {"Tavern Brawler"},
			"Titanstring Bow":  {"Arcane Archer"},
		},
	}
}

func testCatalog() *mocks.CatalogStore {
	store := mocks.NewCatalogStore()
	store.Acts[entities.Act1] = []entities.Item{
		{ID: 1, GeneralArea: "Crash Site", Type: "Weapon", Name: "Phalar Aluve"},
		{ID: 2, GeneralArea: "Crash Site", Type: "Gloves", Name: "Gloves of Cinder"},
		{ID: 3, GeneralArea: "Grove", Type: "Bow", Name: "Titanstring Bow"},
	}
	store.Acts[entities.Act2] = []entities.Item{
		{ID: 4, GeneralArea: "Last Light Inn", Type: "Cloak", Name: "Plain Cloak"},
	}
	store.Hints = entities.GeneralAreaHints{"Crash Site": "Where the nautiloid fell"}
	return store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	f := &fixture{
		catalog:   testCatalog(),
		backend:   mocks.NewStateBackend(),
		equipment: testEquipment(),
	}

	var err error
	f.completed, err = services.LoadItemSetStore(ctx, f.backend, services.CompletedItemsKey)
	require.NoError(t, err)
	f.hidden, err = services.LoadItemSetStore(ctx, f.backend, services.HiddenItemsKey)
	require.NoError(t, err)
	f.builds, err = services.LoadBuildsStore(ctx, f.backend, f.equipment.BuildNames())
	require.NoError(t, err)
	return f
}

func (f *fixture) itemsHandler() *ItemsHandler {
	return NewItemsHandler(f.catalog, services.NewViewService(f.equipment), f.completed, f.hidden, f.builds)
}

func ids(items []entities.Item) []int {
	out := make([]int, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

// sheetRows builds a minimal act sheet: header, area header with a hint, one row per item.
func sheetRows(area, hint string, names ...string) [][]string {
	rows := [][]string{
		{"", "", "Type", "Name", "", "", "Effect"},
		{area, "", hint, ""},
	}
	for _, name := range names {
		rows = append(rows, []string{"", "", "Weapon", name, "", "", name + " effect"})
	}
	return rows
}
