package parsers

import (
	"maps"
	"slices"
	"strings"

	"github.com/ersonp/bg3-checklist/internal/domain/entities"
)

// Column positions in the item sheets. Other columns are ignored.
const (
	ColArea     = 0
	ColType     = 2
	ColName     = 3
	ColEffect   = 6
	ColSource   = 11
	ColLocation = 15
)

const (
	endOfActMarker  = "End of Act"
	generalInfoArea = "General information"
)

// DefaultCarryOverNames lists items whose effect lines continue into the next
// entry of the reference sheet. Revise it whenever the sheet layout changes.
var DefaultCarryOverNames = []string{
	"Sussur Greatsword",
	"Sussur Dagger",
	"Infernal Spear",
	"Vicious Battleaxe",
	"Dolor Amarus",
}

// Accumulator is the state carried from one row to the next.
// Items and Hints collect the output; the other fields describe the item being read.
type Accumulator struct {
	Area     string
	Type     string
	Name     string
	Effect   []string
	Source   string
	Location string

	Items []entities.Item
	Hints entities.GeneralAreaHints
}

// Accumulating reports whether a real item is being read.
func (a *Accumulator) Accumulating() bool {
	return a.Name != "" && a.Name != entities.HeaderName
}

// SheetResult is the output of parsing one act's sheet. Items have no IDs yet.
type SheetResult struct {
	Items []entities.Item
	Hints entities.GeneralAreaHints
}

// SheetParser rebuilds items from a sheet that uses merged cells:
// a value applies to the following rows until it is overwritten.
type SheetParser struct {
	carryOver map[string]struct{}
}

// NewSheetParser creates a parser. Items named in carryOverNames keep their
// effect lines in the accumulator after they are emitted.
func NewSheetParser(carryOverNames []string) *SheetParser {
	carryOver := make(map[string]struct{}, len(carryOverNames))
	for _, name := range carryOverNames {
		carryOver[name] = struct{}{}
	}
	return &SheetParser{carryOver: carryOver}
}

// Parse folds all rows into a SheetResult.
func (p *SheetParser) Parse(rows [][]string) *SheetResult {
	acc := Accumulator{Hints: entities.GeneralAreaHints{}}
	for _, row := range rows {
		acc = p.Step(acc, row)
	}
	acc = p.Finish(acc)

	return &SheetResult{
		Items: acc.Items,
		Hints: acc.Hints,
	}
}

// Step applies one row to the accumulator and returns the new state.
// The input state is never modified.
func (p *SheetParser) Step(acc Accumulator, row []string) Accumulator {
	area := cell(row, ColArea)
	typ := cell(row, ColType)
	name := cell(row, ColName)

	switch {
	case area != "" && !strings.HasPrefix(area, endOfActMarker):
		// The pending item belongs to the area before this header.
		acc = p.startNext(acc)
		acc.Area = area
		if strings.Contains(typ, " ") && area != generalInfoArea {
			acc.Hints = withHint(acc.Hints, area, typ)
			return acc
		}
	case typ != "" && name != "":
		acc = p.startNext(acc)
	}

	return applyFields(acc, row)
}

// Finish emits the item still being read, if any.
func (p *SheetParser) Finish(acc Accumulator) Accumulator {
	if acc.Accumulating() {
		acc = emit(acc)
	}
	return acc
}

// startNext emits the pending item and clears the per-item fields.
// Source and location are merged cells and carry over.
func (p *SheetParser) startNext(acc Accumulator) Accumulator {
	keepEffect := false
	if acc.Accumulating() {
		acc = emit(acc)
		_, keepEffect = p.carryOver[acc.Name]
	}
	acc.Type = ""
	acc.Name = ""
	if !keepEffect {
		acc.Effect = nil
	}
	return acc
}

func emit(acc Accumulator) Accumulator {
	acc.Items = append(slices.Clip(acc.Items), entities.Item{
		GeneralArea: acc.Area,
		Type:        acc.Type,
		Name:        acc.Name,
		Effect:      append([]string{}, acc.Effect...),
		Source:      acc.Source,
		Location:    acc.Location,
	})
	return acc
}

func applyFields(acc Accumulator, row []string) Accumulator {
	if v := cell(row, ColType); v != "" {
		acc.Type = v
	}
	if v := cell(row, ColName); v != "" {
		acc.Name = v
	}
	if v := cell(row, ColEffect); v != "" {
		acc.Effect = append(slices.Clip(acc.Effect), v)
	}
	if v := cell(row, ColSource); v != "" {
		acc.Source = v
	}
	if v := cell(row, ColLocation); v != "" {
		acc.Location = v
	}
	return acc
}

// withHint returns a copy of hints with area set, leaving the input untouched.
func withHint(hints entities.GeneralAreaHints, area, hint string) entities.GeneralAreaHints {
	out := make(entities.GeneralAreaHints, len(hints)+1)
	maps.Copy(out, hints)
	out[area] = hint
	return out
}

// DistinctNames returns the distinct values of the name column in first-seen
// order, skipping the header label.
func DistinctNames(rows [][]string) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, row := range rows {
		name := cell(row, ColName)
		if name == "" || name == entities.HeaderName {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// cell returns the value at index i, or "" for short rows.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
