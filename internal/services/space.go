// Package services orchestrates use cases over the store and the story
// generator. Handlers stay thin; business rules live here.
package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/youspace/youspace/internal/api/validate"
	"github.com/youspace/youspace/internal/model"
	"github.com/youspace/youspace/internal/store"
	"github.com/youspace/youspace/internal/story"
)

// StoryGenerator is what SpaceService needs from the story package.
type StoryGenerator interface {
	Generate(ctx context.Context, mode model.StoryMode, memories []story.MemoryInput) story.Result
}

// PathNormalizer canonicalizes photo references before persistence.
type PathNormalizer interface {
	NormalizePath(raw string) (string, error)
}

// AddMemoryRequest carries the fields of one "add memory" call.
type AddMemoryRequest struct {
	SpaceID     string
	DisplayName string
	Note        string
	PhotoURL    string
}

// SpaceService implements the space API semantics: memory CRUD and
// story generation with a single upserted story per space.
type SpaceService struct {
	store store.Store
	gen   StoryGenerator
	norm  PathNormalizer
	log   zerolog.Logger

	// Serializes generate+upsert per space so concurrent generation
	// calls cannot race the one-record-per-space invariant.
	mu     sync.Mutex
	spaces map[string]*sync.Mutex
}

func NewSpaceService(s store.Store, gen StoryGenerator, norm PathNormalizer, log zerolog.Logger) *SpaceService {
	return &SpaceService{
		store:  s,
		gen:    gen,
		norm:   norm,
		log:    log,
		spaces: make(map[string]*sync.Mutex),
	}
}

func (s *SpaceService) spaceLock(spaceID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.spaces[spaceID]
	if !ok {
		l = &sync.Mutex{}
		s.spaces[spaceID] = l
	}
	return l
}

// AddMemory validates and persists one contributed memory. No write
// happens on validation failure.
func (s *SpaceService) AddMemory(ctx context.Context, req AddMemoryRequest) (*model.Memory, error) {
	if err := validate.AddMemory(req.SpaceID, req.DisplayName, req.Note, req.PhotoURL); err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrValidation, err)
	}
	photoURL, err := s.norm.NormalizePath(req.PhotoURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrValidation, err)
	}

	return s.store.Memories().Create(ctx, &model.Memory{
		SpaceID:     req.SpaceID,
		DisplayName: req.DisplayName,
		Note:        req.Note,
		PhotoURL:    photoURL,
	})
}

// ListMemories returns the space's memories in ascending creation
// order; an unknown space yields an empty list.
func (s *SpaceService) ListMemories(ctx context.Context, spaceID string) ([]*model.Memory, error) {
	if err := validate.SpaceID(spaceID); err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrValidation, err)
	}
	return s.store.Memories().ListBySpace(ctx, spaceID)
}

// GenerateStory synthesizes and upserts the space's memory book. A
// space with no memories is a validation failure and performs no
// write. Generation itself cannot fail; storage failures surface.
func (s *SpaceService) GenerateStory(ctx context.Context, spaceID string, mode model.StoryMode) (*model.GeneratedStory, error) {
	if err := validate.SpaceID(spaceID); err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrValidation, err)
	}
	if mode == "" {
		mode = model.ModeNarrative
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: unknown story mode %q", model.ErrValidation, mode)
	}

	lock := s.spaceLock(spaceID)
	lock.Lock()
	defer lock.Unlock()

	memories, err := s.store.Memories().ListBySpace(ctx, spaceID)
	if err != nil {
		return nil, err
	}
	if len(memories) == 0 {
		return nil, fmt.Errorf("%w: no memories found for this space", model.ErrValidation)
	}

	inputs := make([]story.MemoryInput, len(memories))
	for i, m := range memories {
		inputs[i] = story.MemoryInput{DisplayName: m.DisplayName, Note: m.Note, PhotoURL: m.PhotoURL}
	}

	res := s.gen.Generate(ctx, mode, inputs)

	stored, err := s.store.Stories().Upsert(ctx, &model.GeneratedStory{
		SpaceID:  spaceID,
		Mode:     res.Mode,
		Title:    res.Title,
		Content:  res.Content,
		Captions: res.Captions,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("space_id", spaceID).
		Str("mode", string(stored.Mode)).
		Int("memories", len(memories)).
		Msg("story generated")
	return stored, nil
}

// GetStory returns the stored story, or model.ErrNotFound as the
// explicit "not yet generated" signal.
func (s *SpaceService) GetStory(ctx context.Context, spaceID string) (*model.GeneratedStory, error) {
	if err := validate.SpaceID(spaceID); err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrValidation, err)
	}
	return s.store.Stories().GetBySpace(ctx, spaceID)
}
