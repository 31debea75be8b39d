package entities

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// NoBuilds is the build tag shown for items that belong to no build.
const NoBuilds = "No builds"

// BuildEquipment is the read-only build membership index.
// Both maps are required; ItemsByBuild is keyed by build name and
// BuildsByItem by item name.
type BuildEquipment struct {
	ItemsByBuild map[string][]string `json:"itemsByBuild"`
	BuildsByItem map[string][]string `json:"buildsByItem"`
}

// EmptyBuildEquipment returns an index with no builds.
func EmptyBuildEquipment() *BuildEquipment {
	return &BuildEquipment{
		ItemsByBuild: map[string][]string{},
		BuildsByItem: map[string][]string{},
	}
}

// Validate checks that both mappings are present.
func (b *BuildEquipment) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: empty document", ErrInvalidBuildData)
	}
	if b.ItemsByBuild == nil {
		return fmt.Errorf("%w: missing itemsByBuild", ErrInvalidBuildData)
	}
	if b.BuildsByItem == nil {
		return fmt.Errorf("%w: missing buildsByItem", ErrInvalidBuildData)
	}
	return nil
}

// BuildNames returns all known build names, sorted.
func (b *BuildEquipment) BuildNames() []string {
	names := make([]string, 0, len(b.ItemsByBuild))
	for name := range b.ItemsByBuild {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasBuild reports whether name is a known build.
func (b *BuildEquipment) HasBuild(name string) bool {
	_, ok := b.ItemsByBuild[name]
	return ok
}

// BuildsForItem returns the builds that use the named item.
func (b *BuildEquipment) BuildsForItem(itemName string) []string {
	return b.BuildsByItem[itemName]
}

// BuildTags returns the builds using the item, comma separated, or NoBuilds.
func (b *BuildEquipment) BuildTags(itemName string) string {
	var tags []string
	for _, name := range b.BuildNames() {
		if slices.Contains(b.ItemsByBuild[name], itemName) {
			tags = append(tags, name)
		}
	}
	if len(tags) == 0 {
		return NoBuilds
	}
	return strings.Join(tags, ", ")
}
