package services

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/bytedance/sonic"

	"github.com/ersonp/bg3-checklist/internal/domain/ports"
)

// Storage keys of the persisted client state.
const (
	CompletedItemsKey = "completed-items-storage"
	HiddenItemsKey    = "hidden-items-storage"
	ActiveBuildsKey   = "builds-storage"
)

// IDSet is a set of item IDs.
type IDSet map[int]struct{}

// NewIDSet creates a set holding ids.
func NewIDSet(ids ...int) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set. A nil set is empty.
func (s IDSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// ItemSetStore owns one persisted set of item IDs (completed or hidden items).
// Every mutation is written to the backend before it becomes visible.
type ItemSetStore struct {
	mu      sync.Mutex
	backend ports.StateBackend
	key     string
	ids     []int
}

// LoadItemSetStore creates a store holding the set persisted under key.
// Duplicate IDs in the stored blob are collapsed.
func LoadItemSetStore(ctx context.Context, backend ports.StateBackend, key string) (*ItemSetStore, error) {
	data, found, err := backend.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", key, err)
	}

	var ids []int
	if found && len(data) > 0 {
		if err := sonic.Unmarshal(data, &ids); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", key, err)
		}
	}

	return &ItemSetStore{
		backend: backend,
		key:     key,
		ids:     dedupe(ids),
	}, nil
}

// Contains reports whether id is in the set.
func (s *ItemSetStore) Contains(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.ids, id)
}

// Add puts id in the set. Adding a present id changes nothing.
func (s *ItemSetStore) Add(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.ids, id) {
		return nil
	}
	return s.commit(ctx, append(slices.Clone(s.ids), id))
}

// Remove takes id out of the set.
func (s *ItemSetStore) Remove(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !slices.Contains(s.ids, id) {
		return nil
	}
	next := slices.DeleteFunc(slices.Clone(s.ids), func(v int) bool { return v == id })
	return s.commit(ctx, next)
}

// Snapshot returns a copy of the set.
func (s *ItemSetStore) Snapshot() IDSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return NewIDSet(s.ids...)
}

// Len returns the number of IDs in the set.
func (s *ItemSetStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// commit persists next and then replaces the in-memory state. Callers hold mu.
func (s *ItemSetStore) commit(ctx context.Context, next []int) error {
	if err := saveJSON(ctx, s.backend, s.key, nonNil(next)); err != nil {
		return err
	}
	s.ids = next
	return nil
}

// BuildsStore owns the persisted set of active build names.
type BuildsStore struct {
	mu      sync.Mutex
	backend ports.StateBackend
	known   []string
	active  []string
}

// LoadBuildsStore creates the active builds store. When nothing was persisted
// yet, every known build starts active.
func LoadBuildsStore(ctx context.Context, backend ports.StateBackend, knownBuilds []string) (*BuildsStore, error) {
	data, found, err := backend.Load(ctx, ActiveBuildsKey)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", ActiveBuildsKey, err)
	}

	active := slices.Clone(knownBuilds)
	if found {
		active = nil
		if len(data) > 0 {
			if err := sonic.Unmarshal(data, &active); err != nil {
				return nil, fmt.Errorf("decoding %s: %w", ActiveBuildsKey, err)
			}
		}
	}

	return &BuildsStore{
		backend: backend,
		known:   slices.Clone(knownBuilds),
		active:  dedupe(active),
	}, nil
}

// IsActive reports whether the build is active.
func (s *BuildsStore) IsActive(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.active, name)
}

// Toggle flips the membership of the build and returns whether it is now active.
func (s *BuildsStore) Toggle(ctx context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wasActive := slices.Contains(s.active, name)
	var next []string
	if wasActive {
		next = slices.DeleteFunc(slices.Clone(s.active), func(v string) bool { return v == name })
	} else {
		next = append(slices.Clone(s.active), name)
	}

	if err := s.commit(ctx, next); err != nil {
		return wasActive, err
	}
	return !wasActive, nil
}

// EnableAll activates every known build.
func (s *BuildsStore) EnableAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, slices.Clone(s.known))
}

// DisableAll deactivates every build.
func (s *BuildsStore) DisableAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, []string{})
}

// Active returns the active builds in activation order.
func (s *BuildsStore) Active() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.active)
}

// Suggest returns the known build closest to name, or "".
func (s *BuildsStore) Suggest(name string) string {
	return ClosestName(name, s.known)
}

func (s *BuildsStore) commit(ctx context.Context, next []string) error {
	if err := saveJSON(ctx, s.backend, ActiveBuildsKey, nonNil(next)); err != nil {
		return err
	}
	s.active = next
	return nil
}

func saveJSON[T any](ctx context.Context, backend ports.StateBackend, key string, v T) error {
	data, err := sonic.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := backend.Save(ctx, key, data); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

// dedupe drops repeated values, keeping the first occurrence.
func dedupe[T comparable](values []T) []T {
	seen := make(map[T]struct{}, len(values))
	out := make([]T, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func nonNil[T any](values []T) []T {
	if values == nil {
		return []T{}
	}
	return values
}
