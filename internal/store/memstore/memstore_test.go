package memstore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/youspace/youspace/internal/model"
	"github.com/youspace/youspace/internal/store"
	"github.com/youspace/youspace/internal/store/storetest"
)

func TestMemstoreConformance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store { return New() })
}

func TestConcurrentUpsertKeepsSingleRecord(t *testing.T) {
	s := New()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Stories().Upsert(ctx, &model.GeneratedStory{
				SpaceID: "race", Mode: model.ModeNarrative, Title: "t", Content: "c",
			})
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := s.Stories().GetBySpace(ctx, "race")
	require.NoError(t, err)
	require.NotEmpty(t, got.ID)
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	s := New()
	ctx := context.Background()

	created, err := s.Memories().Create(ctx, &model.Memory{
		SpaceID: "sp", DisplayName: "Ana", Note: "n", PhotoURL: "/objects/x.jpg",
	})
	require.NoError(t, err)

	created.Note = "mutated"
	lst, err := s.Memories().ListBySpace(ctx, "sp")
	require.NoError(t, err)
	require.Equal(t, "n", lst[0].Note)
}
