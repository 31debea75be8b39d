package ports

import (
	"github.com/ersonp/bg3-checklist/internal/domain/entities"
)

// Manifest describes one catalog generation run.
type Manifest struct {
	GenerationID string               `json:"generation_id"`
	GeneratedAt  string               `json:"generated_at"`
	Acts         map[entities.Act]int `json:"acts"`
	Warnings     []string             `json:"warnings,omitempty"`
}

// CatalogStore reads and writes the static catalog artifacts.
// Saved artifacts stay invisible to the Load methods until Commit.
type CatalogStore interface {
	// SaveAct writes the items of one act. The act field is not stored.
	SaveAct(act entities.Act, items []entities.Item) error

	// SaveHints writes the general area hints table.
	SaveHints(hints entities.GeneralAreaHints) error

	// SaveManifest writes the generation manifest.
	SaveManifest(m Manifest) error

	// Commit publishes everything saved since the last Commit or Discard.
	Commit() error

	// Discard drops everything saved since the last Commit or Discard.
	Discard() error

	// LoadCatalog returns all acts merged in act order with Act attached.
	LoadCatalog() ([]entities.Item, error)

	// LoadHints returns the general area hints table.
	LoadHints() (entities.GeneralAreaHints, error)

	// LoadManifest returns the last generation manifest.
	LoadManifest() (*Manifest, error)
}
