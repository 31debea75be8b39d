// Package artifacts reads and writes the generated catalog files.
package artifacts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"github.com/ersonp/bg3-checklist/internal/domain/entities"
	"github.com/ersonp/bg3-checklist/internal/domain/ports"
)

const (
	hintsFile    = "general-area-hints.json"
	manifestFile = "manifest.json"
	stagingDir   = ".staging"
)

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Store implements ports.CatalogStore on a data directory.
// Saves go to a staging directory inside it and become readable on Commit.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created on first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// ActFile returns the path of the published indented artifact of act.
func (s *Store) ActFile(act entities.Act) string {
	return filepath.Join(s.dir, actFileName(act))
}

// MinActFile returns the path of the published compact artifact of act.
func (s *Store) MinActFile(act entities.Act) string {
	return filepath.Join(s.dir, minActFileName(act))
}

func actFileName(act entities.Act) string {
	return fmt.Sprintf("act%d.json", act)
}

func minActFileName(act entities.Act) string {
	return fmt.Sprintf("act%d.min.json", act)
}

// SaveAct writes the act's items both indented and compact.
func (s *Store) SaveAct(act entities.Act, items []entities.Item) error {
	stored := make([]entities.Item, len(items))
	for i, item := range items {
		item.Act = 0
		stored[i] = item
	}

	pretty, err := sonic.ConfigStd.MarshalIndent(stored, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding act %d: %w", act, err)
	}
	compact, err := sonic.ConfigStd.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encoding act %d: %w", act, err)
	}

	if err := s.stage(actFileName(act), append(pretty, '\n')); err != nil {
		return err
	}
	return s.stage(minActFileName(act), compact)
}

// SaveHints writes the general area hints table.
func (s *Store) SaveHints(hints entities.GeneralAreaHints) error {
	if hints == nil {
		hints = entities.GeneralAreaHints{}
	}
	data, err := sonic.ConfigStd.MarshalIndent(hints, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding hints: %w", err)
	}
	return s.stage(hintsFile, append(data, '\n'))
}

// SaveManifest writes the manifest, filling in the generation id and time when unset.
func (s *Store) SaveManifest(m ports.Manifest) error {
	if m.GenerationID == "" {
		m.GenerationID = uuid.NewString()
	}
	if m.GeneratedAt == "" {
		m.GeneratedAt = timeNow().UTC().Format(time.RFC3339)
	}

	data, err := sonic.ConfigStd.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	return s.stage(manifestFile, append(data, '\n'))
}

// Commit moves every staged file into the data directory. The manifest goes
// last so it never describes acts that are not in place yet.
func (s *Store) Commit() error {
	staging := filepath.Join(s.dir, stagingDir)
	entries, err := os.ReadDir(staging)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading staged catalog: %w", err)
	}

	hasManifest := false
	for _, entry := range entries {
		name := entry.Name()
		if !entry.Type().IsRegular() || filepath.Ext(name) == ".tmp" {
			continue
		}
		if name == manifestFile {
			hasManifest = true
			continue
		}
		if err := s.publish(name); err != nil {
			return err
		}
	}
	if hasManifest {
		if err := s.publish(manifestFile); err != nil {
			return err
		}
	}

	return s.Discard()
}

// Discard drops every staged file. The published catalog is left untouched.
func (s *Store) Discard() error {
	if err := os.RemoveAll(filepath.Join(s.dir, stagingDir)); err != nil {
		return fmt.Errorf("removing staged catalog: %w", err)
	}
	return nil
}

func (s *Store) publish(name string) error {
	if err := os.Rename(filepath.Join(s.dir, stagingDir, name), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("publishing %s: %w", name, err)
	}
	return nil
}

// LoadCatalog reads every act and returns the items in act order with Act set.
func (s *Store) LoadCatalog() ([]entities.Item, error) {
	var all []entities.Item
	for _, act := range entities.AllActs {
		var items []entities.Item
		if err := s.read(s.MinActFile(act), &items); err != nil {
			return nil, fmt.Errorf("loading act %d: %w", act, err)
		}
		for i := range items {
			items[i].Act = act
		}
		all = append(all, items...)
	}
	return all, nil
}

// LoadHints reads the general area hints table.
func (s *Store) LoadHints() (entities.GeneralAreaHints, error) {
	hints := entities.GeneralAreaHints{}
	if err := s.read(filepath.Join(s.dir, hintsFile), &hints); err != nil {
		return nil, fmt.Errorf("loading hints: %w", err)
	}
	return hints, nil
}

// LoadManifest reads the last generation manifest.
func (s *Store) LoadManifest() (*ports.Manifest, error) {
	var m ports.Manifest
	if err := s.read(filepath.Join(s.dir, manifestFile), &m); err != nil {
		return nil, fmt.Errorf("loading manifest: %w", err)
	}
	return &m, nil
}

func (s *Store) read(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s (run 'checklist generate' first)", entities.ErrCatalogNotFound, path)
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := sonic.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

// stage writes name into the staging directory through a temporary file.
func (s *Store) stage(name string, data []byte) error {
	staging := filepath.Join(s.dir, stagingDir)
	if err := os.MkdirAll(staging, 0755); err != nil {
		return fmt.Errorf("creating staging directory: %w", err)
	}

	path := filepath.Join(staging, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
