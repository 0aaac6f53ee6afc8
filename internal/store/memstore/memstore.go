// Package memstore is the in-process store adapter. It backs local
// development and tests; data does not survive a restart.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/youspace/youspace/internal/model"
	"github.com/youspace/youspace/internal/store"
)

type memStore struct {
	mu       sync.RWMutex
	memories map[string]*model.Memory         // keyed by memory id
	stories  map[string]*model.GeneratedStory // keyed by space id
}

// New returns an empty in-memory store.
func New() store.Store {
	return &memStore{
		memories: make(map[string]*model.Memory),
		stories:  make(map[string]*model.GeneratedStory),
	}
}

func (s *memStore) Memories() store.Memories { return (*memories)(s) }
func (s *memStore) Stories() store.Stories   { return (*stories)(s) }

// HealthPing implements store.HealthPinger.
func (s *memStore) HealthPing(ctx context.Context) error { return ctx.Err() }

type memories memStore

func (m *memories) Create(ctx context.Context, in *model.Memory) (*model.Memory, error) {
	out := *in
	if out.ID == "" {
		out.ID = uuid.New().String()
	}
	if out.CreatedAt.IsZero() {
		out.CreatedAt = time.Now().UTC()
	}
	m.mu.Lock()
	m.memories[out.ID] = &out
	m.mu.Unlock()

	cp := out
	return &cp, nil
}

func (m *memories) ListBySpace(ctx context.Context, spaceID string) ([]*model.Memory, error) {
	m.mu.RLock()
	res := make([]*model.Memory, 0)
	for _, mem := range m.memories {
		if mem.SpaceID == spaceID {
			cp := *mem
			res = append(res, &cp)
		}
	}
	m.mu.RUnlock()

	sort.SliceStable(res, func(i, j int) bool {
		if res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].ID < res[j].ID
		}
		return res[i].CreatedAt.Before(res[j].CreatedAt)
	})
	return res, nil
}

type stories memStore

func (s *stories) Upsert(ctx context.Context, in *model.GeneratedStory) (*model.GeneratedStory, error) {
	out := *in
	out.CreatedAt = time.Now().UTC()

	s.mu.Lock()
	if existing, ok := s.stories[in.SpaceID]; ok {
		out.ID = existing.ID
	} else if out.ID == "" {
		out.ID = uuid.New().String()
	}
	s.stories[in.SpaceID] = &out
	s.mu.Unlock()

	cp := out
	return &cp, nil
}

func (s *stories) GetBySpace(ctx context.Context, spaceID string) (*model.GeneratedStory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.stories[spaceID]
	if !ok {
		return nil, model.ErrNotFound
	}
	cp := *st
	return &cp, nil
}
