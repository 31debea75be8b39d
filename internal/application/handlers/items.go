package handlers

import (
	"fmt"

	"github.com/ersonp/bg3-checklist/internal/domain/entities"
	"github.com/ersonp/bg3-checklist/internal/domain/ports"
	"github.com/ersonp/bg3-checklist/internal/domain/services"
)

// ItemsHandler renders the item list and the per-area overview.
type ItemsHandler struct {
	store     ports.CatalogStore
	view      *services.ViewService
	completed *services.ItemSetStore
	hidden    *services.ItemSetStore
	builds    *services.BuildsStore
}

// NewItemsHandler creates a new items handler.
func NewItemsHandler(
	store ports.CatalogStore,
	view *services.ViewService,
	completed, hidden *services.ItemSetStore,
	builds *services.BuildsStore,
) *ItemsHandler {
	return &ItemsHandler{
		store:     store,
		view:      view,
		completed: completed,
		hidden:    hidden,
		builds:    builds,
	}
}

// ItemsQuery selects one page of the item list. A zero Act means every act.
type ItemsQuery struct {
	services.ViewQuery
	Act entities.Act
}

// AreasQuery selects the per-area overview. A zero Act means every act.
type AreasQuery struct {
	Act     entities.Act
	ShowAll bool
}

// Handle returns the requested page of visible items.
func (h *ItemsHandler) Handle(q ItemsQuery) (*services.Page, error) {
	items, err := h.catalog(q.Act)
	if err != nil {
		return nil, err
	}

	page := h.view.Render(items, h.State(), q.ViewQuery)
	return &page, nil
}

// Areas groups the act's items by general area. Hidden items are left out.
func (h *ItemsHandler) Areas(q AreasQuery) ([]services.AreaGroup, error) {
	items, err := h.catalog(q.Act)
	if err != nil {
		return nil, err
	}

	hints, err := h.store.LoadHints()
	if err != nil {
		return nil, fmt.Errorf("loading hints: %w", err)
	}

	state := h.State()
	visible := services.FilterVisible(items, state.Completed, state.Hidden, nil, h.view.Builds(),
		services.FilterOptions{ShowCompleted: true})
	return services.GroupByArea(visible, hints, state.Completed, q.ShowAll), nil
}

// State snapshots the client state used for filtering.
func (h *ItemsHandler) State() services.ViewState {
	return services.ViewState{
		Completed:    h.completed.Snapshot(),
		Hidden:       h.hidden.Snapshot(),
		ActiveBuilds: h.builds.Active(),
	}
}

// ProgressCounts is the size of each persisted item set.
type ProgressCounts struct {
	Completed int
	Hidden    int
}

// Progress returns how many items are marked completed and hidden.
func (h *ItemsHandler) Progress() ProgressCounts {
	return ProgressCounts{
		Completed: h.completed.Len(),
		Hidden:    h.hidden.Len(),
	}
}

// BuildTags returns the build column value of an item.
func (h *ItemsHandler) BuildTags(item *entities.Item) string {
	return h.view.Builds().BuildTags(item.Name)
}

func (h *ItemsHandler) catalog(act entities.Act) ([]entities.Item, error) {
	if act != 0 && !act.IsValid() {
		return nil, fmt.Errorf("%w: %d", entities.ErrUnknownAct, act)
	}

	items, err := h.store.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	if act == 0 {
		return items, nil
	}

	out := make([]entities.Item, 0, len(items))
	for _, item := range items {
		if item.Act == act {
			out = append(out, item)
		}
	}
	return out, nil
}
