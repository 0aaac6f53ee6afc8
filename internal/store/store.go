package store

import (
	"context"

	"github.com/youspace/youspace/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (memstore,
// postgres, sqlite) and are selected at startup by the factory; call
// sites never branch on the backend.
type Store interface {
	Memories() Memories
	Stories() Stories
}

type Memories interface {
	Create(ctx context.Context, m *model.Memory) (*model.Memory, error)
	// ListBySpace returns the space's memories in ascending creation
	// order. An unknown space yields an empty slice, not an error.
	ListBySpace(ctx context.Context, spaceID string) ([]*model.Memory, error)
}

type Stories interface {
	// Upsert enforces the one-record-per-space invariant: insert when
	// absent, otherwise replace in place keeping the existing id.
	Upsert(ctx context.Context, s *model.GeneratedStory) (*model.GeneratedStory, error)
	// GetBySpace returns model.ErrNotFound when no story exists yet.
	GetBySpace(ctx context.Context, spaceID string) (*model.GeneratedStory, error)
}

// HealthPinger is implemented by adapters that can verify connectivity.
type HealthPinger interface {
	HealthPing(ctx context.Context) error
}
