// Package entities contains core domain data structures.
package entities

import (
	"net/url"
	"strings"
)

// HeaderName is the label of the name column. It shows up in the sheet
// wherever the header row is repeated and never names a real item.
const HeaderName = "Name"

// WikiBaseURL is the prefix for item wiki pages.
const WikiBaseURL = "https://bg3.wiki/wiki/"

// Item represents a collectible entry of the catalog.
// Act is attached when per-act catalogs are merged and is omitted from per-act artifacts.
type Item struct {
	ID          int      `json:"id"`
	Act         Act      `json:"act,omitempty"`
	GeneralArea string   `json:"generalArea"`
	Type        string   `json:"type"`
	Name        string   `json:"name"`
	Effect      []string `json:"effect"`
	Source      string   `json:"source"`
	Location    string   `json:"location"`
}

// WikiURL returns the wiki page for the item.
func (i *Item) WikiURL() string {
	return WikiURL(i.Name)
}

// WikiURL builds a wiki link from an item name: spaces become underscores,
// the result is URI encoded and apostrophes are percent encoded.
func WikiURL(name string) string {
	path := (&url.URL{Path: strings.ReplaceAll(name, " ", "_")}).EscapedPath()
	return WikiBaseURL + strings.ReplaceAll(path, "'", "%27")
}

// GeneralAreaHints maps a general area name to its one-line description.
type GeneralAreaHints map[string]string

// Merge copies all hints from other into h, overriding existing keys.
func (h GeneralAreaHints) Merge(other GeneralAreaHints) {
	for area, hint := range other {
		h[area] = hint
	}
}
