package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/agnivade/levenshtein"

	"github.com/ersonp/bg3-checklist/internal/domain/entities"
	"github.com/ersonp/bg3-checklist/internal/domain/ports"
	"github.com/ersonp/bg3-checklist/internal/infrastructure/parsers"
)

// FirstItemID is the ID of the first item of act 1.
const FirstItemID = 1

// DriftKind tells which side of the comparison a name is missing from.
type DriftKind string

const (
	// DriftMissingFromItems marks a sheet name that produced no item.
	DriftMissingFromItems DriftKind = "missing_from_items"
	// DriftMissingFromRows marks an item name that is not in the name column.
	DriftMissingFromRows DriftKind = "missing_from_rows"
)

// DriftWarning reports a name found on only one side of the sheet/item comparison.
// It is advisory and never stops generation.
type DriftWarning struct {
	Act        entities.Act
	Name       string
	Kind       DriftKind
	Suggestion string // closest name on the other side, if any is close
}

func (w DriftWarning) String() string {
	var msg string
	switch w.Kind {
	case DriftMissingFromItems:
		msg = fmt.Sprintf("act %d: %q is in the sheet but no item was produced", w.Act, w.Name)
	default:
		msg = fmt.Sprintf("act %d: item %q does not appear in the name column", w.Act, w.Name)
	}
	if w.Suggestion != "" {
		msg += fmt.Sprintf(" (closest: %q)", w.Suggestion)
	}
	return msg
}

// CatalogResult is the parsed catalog of every requested act.
type CatalogResult struct {
	Acts     map[entities.Act][]entities.Item
	Hints    entities.GeneralAreaHints
	Warnings []DriftWarning
}

// Count returns the number of items across all acts.
func (r *CatalogResult) Count() int {
	n := 0
	for _, items := range r.Acts {
		n += len(items)
	}
	return n
}

// Items returns all acts merged in act order with Act attached.
func (r *CatalogResult) Items() []entities.Item {
	out := make([]entities.Item, 0, r.Count())
	for _, act := range entities.AllActs {
		for _, item := range r.Acts[act] {
			item.Act = act
			out = append(out, item)
		}
	}
	return out
}

// CatalogService builds the item catalog from the act sheets.
type CatalogService struct {
	source ports.SheetSource
	parser *parsers.SheetParser
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(source ports.SheetSource, carryOverNames []string) *CatalogService {
	return &CatalogService{
		source: source,
		parser: parsers.NewSheetParser(carryOverNames),
	}
}

// Generate fetches and parses the acts in campaign order.
// Any fetch failure aborts the whole run so no partial catalog is returned.
func (s *CatalogService) Generate(ctx context.Context, acts []entities.Act) (*CatalogResult, error) {
	ordered, err := orderActs(acts)
	if err != nil {
		return nil, err
	}

	result := &CatalogResult{
		Acts:  make(map[entities.Act][]entities.Item, len(ordered)),
		Hints: entities.GeneralAreaHints{},
	}

	nextID := FirstItemID
	for _, act := range ordered {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rows, err := s.source.Fetch(ctx, act)
		if err != nil {
			return nil, fmt.Errorf("fetching act %d: %w", act, err)
		}

		sheet := s.parser.Parse(rows)
		nextID = AssignIDs(sheet.Items, nextID)

		result.Acts[act] = sheet.Items
		result.Hints.Merge(sheet.Hints)
		result.Warnings = append(result.Warnings, CheckDrift(act, rows, sheet.Items)...)
	}

	return result, nil
}

// AssignIDs numbers items from next onward and returns the following free ID.
func AssignIDs(items []entities.Item, next int) int {
	for i := range items {
		items[i].ID = next
		next++
	}
	return next
}

// CheckDrift compares the distinct names of the name column with the emitted items.
func CheckDrift(act entities.Act, rows [][]string, items []entities.Item) []DriftWarning {
	rowNames := parsers.DistinctNames(rows)
	rowSet := make(map[string]struct{}, len(rowNames))
	for _, name := range rowNames {
		rowSet[name] = struct{}{}
	}

	itemNames := make([]string, 0, len(items))
	itemSet := make(map[string]struct{}, len(items))
	for i := range items {
		if _, ok := itemSet[items[i].Name]; ok {
			continue
		}
		itemSet[items[i].Name] = struct{}{}
		itemNames = append(itemNames, items[i].Name)
	}

	var warnings []DriftWarning
	for _, name := range rowNames {
		if _, ok := itemSet[name]; !ok {
			warnings = append(warnings, DriftWarning{
				Act:        act,
				Name:       name,
				Kind:       DriftMissingFromItems,
				Suggestion: ClosestName(name, itemNames),
			})
		}
	}
	for _, name := range itemNames {
		if _, ok := rowSet[name]; !ok {
			warnings = append(warnings, DriftWarning{
				Act:        act,
				Name:       name,
				Kind:       DriftMissingFromRows,
				Suggestion: ClosestName(name, rowNames),
			})
		}
	}
	return warnings
}

// ClosestName returns the candidate nearest to name by edit distance,
// or "" if none is close enough to be a plausible typo.
func ClosestName(name string, candidates []string) string {
	best := ""
	bestDist := -1
	for _, c := range candidates {
		if c == name {
			continue
		}
		dist := levenshtein.ComputeDistance(name, c)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = c, dist
		}
	}
	if bestDist < 0 || bestDist > suggestionLimit(len(name)) {
		return ""
	}
	return best
}

func suggestionLimit(length int) int {
	return max(2, length/4)
}

func orderActs(acts []entities.Act) ([]entities.Act, error) {
	if len(acts) == 0 {
		return slices.Clone(entities.AllActs), nil
	}
	ordered := slices.Clone(acts)
	slices.Sort(ordered)
	ordered = slices.Compact(ordered)
	for _, act := range ordered {
		if !act.IsValid() {
			return nil, fmt.Errorf("%w: %d", entities.ErrUnknownAct, act)
		}
	}
	return ordered, nil
}
