package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/bg3-checklist/internal/domain/entities"
)

func testBuilds() *entities.BuildEquipment {
	return &entities.BuildEquipment{
		ItemsByBuild: map[string][]string{
			"Tavern Brawler": {"Phalar", "Gloves of Cinder"},
			"Arcane Archer":  {"Titanstring Bow"},
		},
		BuildsByItem: map[string][]string{
			"Phalar":           {"Tavern Brawler"},
			"Gloves of Cinder": {"Tavern Brawler"},
			"Titanstring Bow":  {"Arcane Archer"},
		},
	}
}

func testItems() []entities.Item {
	return []entities.Item{
		{ID: 1, Act: entities.Act1, Name: "Phalar", Type: "Weapon", GeneralArea: "Crash Site", Source: "Looted", Location: "Beach"},
		{ID: 2, Act: entities.Act1, Name: "Gloves of Cinder", Type: "Gloves", GeneralArea: "Grove", Source: "Trader", Location: "Camp"},
		{ID: 3, Act: entities.Act2, Name: "Titanstring Bow", Type: "Weapon", GeneralArea: "Moonrise", Source: "Chest", Location: "Tower"},
		{ID: 4, Act: entities.Act3, Name: "Plain Cloak", Type: "Cloak", GeneralArea: "Lower City", Source: "Vendor", Location: "Market"},
	}
}

func ids(items []entities.Item) []int {
	out := make([]int, len(items))
	for i := range items {
		out[i] = items[i].ID
	}
	return out
}

func TestFilterVisible(t *testing.T) {
	builds := testBuilds()

	tests := []struct {
		name         string
		completed    IDSet
		hidden       IDSet
		activeBuilds []string
		opts         FilterOptions
		expected     []int
	}{
		{
			name:     "nothing marked",
			expected: []int{1, 2, 3, 4},
		},
		{
			name:      "completed hidden by default",
			completed: NewIDSet(2),
			expected:  []int{1, 3, 4},
		},
		{
			name:      "completed shown on request",
			completed: NewIDSet(2),
			opts:      FilterOptions{ShowCompleted: true},
			expected:  []int{1, 2, 3, 4},
		},
		{
			name:     "hidden items dropped",
			hidden:   NewIDSet(1, 4),
			expected: []int{2, 3},
		},
		{
			name:     "hidden shown on request",
			hidden:   NewIDSet(1, 4),
			opts:     FilterOptions{ShowHidden: true},
			expected: []int{1, 2, 3, 4},
		},
		{
			name:      "completed and hidden need both toggles",
			completed: NewIDSet(3),
			hidden:    NewIDSet(3),
			opts:      FilterOptions{ShowCompleted: true},
			expected:  []int{1, 2, 4},
		},
		{
			name:         "builds only keeps items of active builds",
			activeBuilds: []string{"Arcane Archer"},
			opts:         FilterOptions{BuildsOnly: true},
			expected:     []int{3},
		},
		{
			name:         "builds only with no active build keeps everything",
			activeBuilds: nil,
			opts:         FilterOptions{BuildsOnly: true},
			expected:     []int{1, 2, 3, 4},
		},
		{
			name:         "active builds ignored without builds only",
			activeBuilds: []string{"Arcane Archer"},
			expected:     []int{1, 2, 3, 4},
		},
		{
			name:         "unknown active build matches nothing",
			activeBuilds: []string{"Homebrew"},
			opts:         FilterOptions{BuildsOnly: true},
			expected:     []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterVisible(testItems(), tt.completed, tt.hidden, tt.activeBuilds, builds, tt.opts)
			assert.Equal(t, tt.expected, ids(got))
		})
	}
}

func TestFilterVisible_Idempotent(t *testing.T) {
	completed := NewIDSet(1)
	hidden := NewIDSet(4)
	active := []string{"Tavern Brawler", "Arcane Archer"}
	opts := FilterOptions{BuildsOnly: true}

	once := FilterVisible(testItems(), completed, hidden, active, testBuilds(), opts)
	twice := FilterVisible(once, completed, hidden, active, testBuilds(), opts)

	assert.Equal(t, once, twice)
	assert.Equal(t, []int{2, 3}, ids(once))
}

func TestViewService_Search(t *testing.T) {
	service := NewViewService(testBuilds())

	tests := []struct {
		name     string
		query    string
		expected []int
	}{
		{name: "empty query keeps all", query: "", expected: []int{1, 2, 3, 4}},
		{name: "name ignoring case", query: "PHALAR", expected: []int{1}},
		{name: "type column", query: "weapon", expected: []int{1, 3}},
		{name: "build column", query: "brawler", expected: []int{1, 2}},
		{name: "no builds tag", query: "no builds", expected: []int{4}},
		{name: "act column", query: "3", expected: []int{4}},
		{name: "location column", query: "market", expected: []int{4}},
		{name: "no match", query: "zzz", expected: []int{}},
		{name: "does not span columns", query: "phalar weapon", expected: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.Search(testItems(), tt.query)
			assert.Equal(t, tt.expected, ids(got))
		})
	}
}

func TestPaginate(t *testing.T) {
	items := make([]entities.Item, 37)
	for i := range items {
		items[i].ID = i + 1
	}

	tests := []struct {
		name      string
		pageIndex int
		pageSize  int
		wantFirst int
		wantLen   int
		wantIndex int
		wantCount int
		wantSize  int
	}{
		{name: "first page", pageIndex: 0, pageSize: 10, wantFirst: 1, wantLen: 10, wantIndex: 0, wantCount: 4, wantSize: 10},
		{name: "last partial page", pageIndex: 3, pageSize: 10, wantFirst: 31, wantLen: 7, wantIndex: 3, wantCount: 4, wantSize: 10},
		{name: "index clamped high", pageIndex: 99, pageSize: 25, wantFirst: 26, wantLen: 12, wantIndex: 1, wantCount: 2, wantSize: 25},
		{name: "index clamped low", pageIndex: -3, pageSize: 50, wantFirst: 1, wantLen: 37, wantIndex: 0, wantCount: 1, wantSize: 50},
		{name: "unknown size falls back", pageIndex: 0, pageSize: 7, wantFirst: 1, wantLen: 15, wantIndex: 0, wantCount: 3, wantSize: DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(items, tt.pageIndex, tt.pageSize)
			require.Len(t, page.Items, tt.wantLen)
			assert.Equal(t, tt.wantFirst, page.Items[0].ID)
			assert.Equal(t, tt.wantIndex, page.PageIndex)
			assert.Equal(t, tt.wantCount, page.PageCount)
			assert.Equal(t, tt.wantSize, page.PageSize)
			assert.Equal(t, 37, page.Total)
		})
	}
}

func TestPaginate_Empty(t *testing.T) {
	page := Paginate(nil, 2, 10)

	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.PageIndex)
	assert.Equal(t, 1, page.PageCount)
	assert.Equal(t, 0, page.Total)
}

func TestPaginate_RoundTrip(t *testing.T) {
	items := make([]entities.Item, 53)
	for i := range items {
		items[i].ID = i + 1
	}

	for _, size := range PageSizes {
		var all []entities.Item
		first := Paginate(items, 0, size)
		for p := 0; p < first.PageCount; p++ {
			all = append(all, Paginate(items, p, size).Items...)
		}
		assert.Equal(t, ids(items), ids(all), "page size %d", size)
	}
}

func TestViewService_Render(t *testing.T) {
	service := NewViewService(testBuilds())
	state := ViewState{
		Completed:    NewIDSet(1),
		ActiveBuilds: []string{"Tavern Brawler"},
	}

	page := service.Render(testItems(), state, ViewQuery{
		FilterOptions: FilterOptions{BuildsOnly: true},
		Search:        "gloves",
		PageSize:      10,
	})

	assert.Equal(t, []int{2}, ids(page.Items))
	assert.Equal(t, 1, page.Total)
}

func TestNewViewService_NilBuilds(t *testing.T) {
	service := NewViewService(nil)

	require.NotNil(t, service.Builds())
	assert.Equal(t, []int{4}, ids(service.Search(testItems(), "cloak")))
}

func TestGroupByArea(t *testing.T) {
	items := []entities.Item{
		{ID: 1, GeneralArea: "Crash Site"},
		{ID: 2, GeneralArea: "Grove"},
		{ID: 3, GeneralArea: "Crash Site"},
		{ID: 4, GeneralArea: "Camp"},
	}
	hints := entities.GeneralAreaHints{"Grove": "Inside the gate"}
	completed := NewIDSet(2, 3)

	t.Run("hides completed", func(t *testing.T) {
		groups := GroupByArea(items, hints, completed, false)

		require.Len(t, groups, 2)
		assert.Equal(t, "Crash Site", groups[0].Area)
		assert.Equal(t, []int{1}, ids(groups[0].Items))
		assert.Equal(t, 1, groups[0].Remaining)
		assert.Equal(t, "Camp", groups[1].Area)
	})

	t.Run("show all", func(t *testing.T) {
		groups := GroupByArea(items, hints, completed, true)

		require.Len(t, groups, 3)
		assert.Equal(t, []string{"Crash Site", "Grove", "Camp"}, []string{groups[0].Area, groups[1].Area, groups[2].Area})
		assert.Equal(t, []int{1, 3}, ids(groups[0].Items))
		assert.Equal(t, "Inside the gate", groups[1].Hint)
		assert.Equal(t, 0, groups[1].Remaining)
	})
}
