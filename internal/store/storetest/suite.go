package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/youspace/youspace/internal/model"
	"github.com/youspace/youspace/internal/store"
)

// Run exercises a minimal compliance suite against a store.Store
// implementation. Implementations should provide a clean, isolated
// store and return it from makeStore.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	spaceID := "space-" + uuid.New().String()

	// Empty space lists cleanly.
	if lst, err := s.Memories().ListBySpace(ctx, spaceID); err != nil || len(lst) != 0 {
		t.Fatalf("ListBySpace empty: n=%d err=%v", len(lst), err)
	}

	// Create assigns id and timestamp.
	m1, err := s.Memories().Create(ctx, &model.Memory{
		SpaceID: spaceID, DisplayName: "Ana", Note: "first snow", PhotoURL: "/objects/a.jpg",
	})
	if err != nil {
		t.Fatalf("Create m1: %v", err)
	}
	if m1.ID == "" || m1.CreatedAt.IsZero() {
		t.Fatalf("Create m1: missing id or timestamp: %+v", m1)
	}
	time.Sleep(5 * time.Millisecond) // ensure monotonic creation time ordering
	m2, err := s.Memories().Create(ctx, &model.Memory{
		SpaceID: spaceID, DisplayName: "Ben", Note: "camp fire", PhotoURL: "/objects/b.jpg",
	})
	if err != nil {
		t.Fatalf("Create m2: %v", err)
	}

	// A second space must not leak in.
	if _, err := s.Memories().Create(ctx, &model.Memory{
		SpaceID: spaceID + "-other", DisplayName: "Eve", Note: "x", PhotoURL: "/objects/c.jpg",
	}); err != nil {
		t.Fatalf("Create other-space: %v", err)
	}

	// Ascending creation order.
	lst, err := s.Memories().ListBySpace(ctx, spaceID)
	if err != nil || len(lst) != 2 {
		t.Fatalf("ListBySpace: n=%d err=%v", len(lst), err)
	}
	if lst[0].ID != m1.ID || lst[1].ID != m2.ID {
		t.Fatalf("ListBySpace order: got [%s %s] want [%s %s]", lst[0].ID, lst[1].ID, m1.ID, m2.ID)
	}
	if lst[1].CreatedAt.Before(lst[0].CreatedAt) {
		t.Fatalf("ListBySpace: timestamps out of order")
	}

	// Story lookup before generation reports absence, not failure.
	if _, err := s.Stories().GetBySpace(ctx, spaceID); err != model.ErrNotFound {
		t.Fatalf("GetBySpace before upsert: want ErrNotFound, got %v", err)
	}

	// First upsert inserts.
	st1, err := s.Stories().Upsert(ctx, &model.GeneratedStory{
		SpaceID: spaceID, Mode: model.ModeNarrative, Title: "Day One", Content: "# Day One\n\nSnow.",
	})
	if err != nil {
		t.Fatalf("Upsert insert: %v", err)
	}
	if st1.ID == "" || st1.CreatedAt.IsZero() {
		t.Fatalf("Upsert insert: missing id or timestamp: %+v", st1)
	}

	// Second upsert replaces in place: same space, one record, stable id.
	st2, err := s.Stories().Upsert(ctx, &model.GeneratedStory{
		SpaceID: spaceID, Mode: model.ModeScrapbook, Title: "Day Two",
		Captions: []model.PhotoCaption{{PhotoURL: "/objects/a.jpg", Caption: "quiet start", Mood: "🌤"}},
	})
	if err != nil {
		t.Fatalf("Upsert replace: %v", err)
	}
	if st2.ID != st1.ID {
		t.Fatalf("Upsert replace: id changed %s -> %s", st1.ID, st2.ID)
	}

	got, err := s.Stories().GetBySpace(ctx, spaceID)
	if err != nil {
		t.Fatalf("GetBySpace after replace: %v", err)
	}
	if got.Title != "Day Two" || got.Mode != model.ModeScrapbook || len(got.Captions) != 1 {
		t.Fatalf("GetBySpace after replace: stale content: %+v", got)
	}
	if got.Captions[0].PhotoURL != "/objects/a.jpg" {
		t.Fatalf("GetBySpace: caption url not preserved: %+v", got.Captions[0])
	}
}
