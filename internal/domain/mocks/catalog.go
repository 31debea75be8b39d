package mocks

import (
	"github.com/ersonp/bg3-checklist/internal/domain/entities"
	"github.com/ersonp/bg3-checklist/internal/domain/ports"
)

// CatalogStore is an in-memory mock implementation of ports.CatalogStore.
// Acts, Hints and Manifest hold the committed catalog.
type CatalogStore struct {
	Acts     map[entities.Act][]entities.Item
	Hints    entities.GeneralAreaHints
	Manifest *ports.Manifest
	Err      error

	// SaveErrForAct limits Err to SaveAct of one act when set.
	SaveErrForAct entities.Act
	CommitErr     error

	SaveActCallCount int
	CommitCallCount  int
	DiscardCallCount int

	staged catalogStage
}

type catalogStage struct {
	acts     map[entities.Act][]entities.Item
	hints    entities.GeneralAreaHints
	manifest *ports.Manifest
}

// NewCatalogStore creates an empty mock store.
func NewCatalogStore() *CatalogStore {
	return &CatalogStore{Acts: make(map[entities.Act][]entities.Item)}
}

// SaveAct stages the act items.
func (m *CatalogStore) SaveAct(act entities.Act, items []entities.Item) error {
	m.SaveActCallCount++
	if m.Err != nil && (m.SaveErrForAct == 0 || m.SaveErrForAct == act) {
		return m.Err
	}
	if m.staged.acts == nil {
		m.staged.acts = make(map[entities.Act][]entities.Item)
	}
	m.staged.acts[act] = items
	return nil
}

// SaveHints stages the hints.
func (m *CatalogStore) SaveHints(hints entities.GeneralAreaHints) error {
	if m.Err != nil && m.SaveErrForAct == 0 {
		return m.Err
	}
	m.staged.hints = hints
	return nil
}

// SaveManifest stages the manifest.
func (m *CatalogStore) SaveManifest(manifest ports.Manifest) error {
	if m.Err != nil && m.SaveErrForAct == 0 {
		return m.Err
	}
	m.staged.manifest = &manifest
	return nil
}

// Commit makes the staged values the committed catalog.
func (m *CatalogStore) Commit() error {
	m.CommitCallCount++
	if m.CommitErr != nil {
		return m.CommitErr
	}
	for act, items := range m.staged.acts {
		m.Acts[act] = items
	}
	if m.staged.hints != nil {
		m.Hints = m.staged.hints
	}
	if m.staged.manifest != nil {
		m.Manifest = m.staged.manifest
	}
	m.staged = catalogStage{}
	return nil
}

// Discard drops the staged values.
func (m *CatalogStore) Discard() error {
	m.DiscardCallCount++
	m.staged = catalogStage{}
	return nil
}

// LoadCatalog merges stored acts in act order.
func (m *CatalogStore) LoadCatalog() ([]entities.Item, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if len(m.Acts) == 0 {
		return nil, entities.ErrCatalogNotFound
	}
	var items []entities.Item
	for _, act := range entities.AllActs {
		for _, item := range m.Acts[act] {
			item.Act = act
			items = append(items, item)
		}
	}
	return items, nil
}

// LoadHints returns the stored hints.
func (m *CatalogStore) LoadHints() (entities.GeneralAreaHints, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Hints == nil {
		return entities.GeneralAreaHints{}, nil
	}
	return m.Hints, nil
}

// LoadManifest returns the stored manifest.
func (m *CatalogStore) LoadManifest() (*ports.Manifest, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Manifest == nil {
		return nil, entities.ErrCatalogNotFound
	}
	return m.Manifest, nil
}
