package config

import (
	"fmt"
	"slices"
)

// DefaultSheetBaseURL is the CSV export of the published checklist spreadsheet.
// Each act lives on its own tab, selected by gid.
const DefaultSheetBaseURL = "https://docs.google.com/spreadsheets/d/1HSM_U4-TspsgoJ5FsT2b-38gWVoOsaIN2ATC6A3FP14/export?format=csv&gid="

var defaultSheetGIDs = map[int]string{
	1: "0",
	2: "1427789417",
	3: "309772712",
}

// SheetConfig says where to read one act's sheet from.
type SheetConfig struct {
	Act  int    `yaml:"act"`
	URL  string `yaml:"url,omitempty"`
	File string `yaml:"file,omitempty"`
}

// mergeSheets replaces the default sheet of every act listed in overrides.
// A second entry for the same act is appended so Validate reports it.
func mergeSheets(defaults, overrides []SheetConfig) []SheetConfig {
	out := slices.Clone(defaults)
	replaced := make(map[int]bool, len(overrides))
	for _, o := range overrides {
		i := slices.IndexFunc(out, func(s SheetConfig) bool { return s.Act == o.Act })
		if i >= 0 && !replaced[o.Act] {
			out[i] = o
			replaced[o.Act] = true
			continue
		}
		out = append(out, o)
	}
	return out
}

// DefaultSheets returns the published sheet of every act.
func DefaultSheets() []SheetConfig {
	sheets := make([]SheetConfig, 0, len(defaultSheetGIDs))
	for act := 1; act <= 3; act++ {
		sheets = append(sheets, SheetConfig{
			Act: act,
			URL: DefaultSheetBaseURL + defaultSheetGIDs[act],
		})
	}
	return sheets
}

// Sheet returns the sheet configured for act.
func (c *Config) Sheet(act int) (SheetConfig, error) {
	for _, s := range c.Sheets {
		if s.Act == act {
			return s, nil
		}
	}
	return SheetConfig{}, fmt.Errorf("no sheet configured for act %d", act)
}
