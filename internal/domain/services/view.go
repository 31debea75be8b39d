package services

import (
	"slices"
	"strings"

	"github.com/ersonp/bg3-checklist/internal/domain/entities"
)

// DefaultPageSize is the page size used when none is chosen.
const DefaultPageSize = 15

// PageSizes are the selectable page sizes.
var PageSizes = []int{10, 15, 20, 25, 50}

// ValidPageSize reports whether n is one of PageSizes.
func ValidPageSize(n int) bool {
	return slices.Contains(PageSizes, n)
}

// FilterOptions are the visibility toggles of the item list.
type FilterOptions struct {
	ShowCompleted bool
	ShowHidden    bool
	BuildsOnly    bool
}

// ViewQuery describes one rendering of the item list.
type ViewQuery struct {
	FilterOptions
	Search    string
	PageIndex int
	PageSize  int
}

// ViewState is the client state the item list is filtered against.
type ViewState struct {
	Completed    IDSet
	Hidden       IDSet
	ActiveBuilds []string
}

// Page is one page of the filtered and searched item list.
type Page struct {
	Items     []entities.Item
	PageIndex int
	PageSize  int
	PageCount int
	Total     int
}

// ViewService derives the visible item list from the catalog and client state.
type ViewService struct {
	builds *entities.BuildEquipment
}

// NewViewService creates a view service over the build membership index.
// A nil index behaves as one with no builds.
func NewViewService(builds *entities.BuildEquipment) *ViewService {
	if builds == nil {
		builds = entities.EmptyBuildEquipment()
	}
	return &ViewService{builds: builds}
}

// Builds returns the build membership index.
func (s *ViewService) Builds() *entities.BuildEquipment {
	return s.builds
}

// Render filters, searches and paginates items, in that order.
func (s *ViewService) Render(items []entities.Item, state ViewState, q ViewQuery) Page {
	visible := FilterVisible(items, state.Completed, state.Hidden, state.ActiveBuilds, s.builds, q.FilterOptions)
	matched := s.Search(visible, q.Search)
	return Paginate(matched, q.PageIndex, q.PageSize)
}

// FilterVisible returns the items the user should see, in input order.
// An item is dropped when it is completed and completed items are hidden,
// when it is hidden and hidden items are not shown, or when only build items
// are wanted, some build is active and none of the item's builds is active.
func FilterVisible(
	items []entities.Item,
	completed, hidden IDSet,
	activeBuilds []string,
	builds *entities.BuildEquipment,
	opts FilterOptions,
) []entities.Item {
	active := make(map[string]struct{}, len(activeBuilds))
	for _, name := range activeBuilds {
		active[name] = struct{}{}
	}

	out := make([]entities.Item, 0, len(items))
	for i := range items {
		item := &items[i]
		if !opts.ShowCompleted && completed.Has(item.ID) {
			continue
		}
		if !opts.ShowHidden && hidden.Has(item.ID) {
			continue
		}
		if opts.BuildsOnly && len(active) > 0 && !inActiveBuild(builds, item.Name, active) {
			continue
		}
		out = append(out, *item)
	}
	return out
}

func inActiveBuild(builds *entities.BuildEquipment, itemName string, active map[string]struct{}) bool {
	if builds == nil {
		return false
	}
	for _, build := range builds.BuildsForItem(itemName) {
		if _, ok := active[build]; ok {
			return true
		}
	}
	return false
}

// Search keeps the items where any visible column contains query,
// ignoring case. An empty query keeps everything.
func (s *ViewService) Search(items []entities.Item, query string) []entities.Item {
	needle := strings.ToLower(query)
	if needle == "" {
		return items
	}

	out := make([]entities.Item, 0, len(items))
	for i := range items {
		for _, col := range s.Columns(&items[i]) {
			if strings.Contains(strings.ToLower(col), needle) {
				out = append(out, items[i])
				break
			}
		}
	}
	return out
}

// Columns returns the rendered values of the item list columns:
// act, name, builds, type, general area, source and location.
func (s *ViewService) Columns(item *entities.Item) []string {
	act := ""
	if item.Act != 0 {
		act = item.Act.String()
	}
	return []string{
		act,
		item.Name,
		s.builds.BuildTags(item.Name),
		item.Type,
		item.GeneralArea,
		item.Source,
		item.Location,
	}
}

// Paginate returns the page at pageIndex. Unknown page sizes fall back to
// DefaultPageSize and the index is clamped to the existing pages.
func Paginate(items []entities.Item, pageIndex, pageSize int) Page {
	if !ValidPageSize(pageSize) {
		pageSize = DefaultPageSize
	}

	total := len(items)
	pageCount := max(1, (total+pageSize-1)/pageSize)
	pageIndex = min(max(pageIndex, 0), pageCount-1)

	start := min(pageIndex*pageSize, total)
	end := min(start+pageSize, total)

	return Page{
		Items:     items[start:end],
		PageIndex: pageIndex,
		PageSize:  pageSize,
		PageCount: pageCount,
		Total:     total,
	}
}

// AreaGroup is one general area section of an act view.
type AreaGroup struct {
	Area      string
	Hint      string
	Items     []entities.Item
	Remaining int
}

// GroupByArea groups items by general area in first-appearance order.
// Unless showAll is set, completed items are left out and areas with
// nothing left to collect are dropped.
func GroupByArea(items []entities.Item, hints entities.GeneralAreaHints, completed IDSet, showAll bool) []AreaGroup {
	var groups []AreaGroup
	index := make(map[string]int)

	for i := range items {
		area := items[i].GeneralArea
		idx, ok := index[area]
		if !ok {
			idx = len(groups)
			index[area] = idx
			groups = append(groups, AreaGroup{Area: area, Hint: hints[area]})
		}
		done := completed.Has(items[i].ID)
		if !done {
			groups[idx].Remaining++
		}
		if showAll || !done {
			groups[idx].Items = append(groups[idx].Items, items[i])
		}
	}

	if showAll {
		return groups
	}
	return slices.DeleteFunc(groups, func(g AreaGroup) bool { return g.Remaining == 0 })
}
