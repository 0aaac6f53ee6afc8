package model

import "time"

// StoryMode selects the shape of a generated story.
type StoryMode string

const (
	// ModeNarrative is a markdown journal: title plus prose body.
	ModeNarrative StoryMode = "narrative"
	// ModeScrapbook is a per-photo caption set with mood markers.
	ModeScrapbook StoryMode = "scrapbook"
)

// Valid reports whether m is a known story mode.
func (m StoryMode) Valid() bool {
	return m == ModeNarrative || m == ModeScrapbook
}

// Memory is one contributed photo plus note within a space.
// Records are immutable after creation; there is no delete operation.
type Memory struct {
	ID          string    `json:"id"`
	SpaceID     string    `json:"spaceId"`
	DisplayName string    `json:"displayName"`
	Note        string    `json:"note"`
	PhotoURL    string    `json:"photoUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PhotoCaption pairs one input photo with its generated caption.
// PhotoURL always echoes the memory's URL verbatim so the renderer can
// re-associate captions with images.
type PhotoCaption struct {
	PhotoURL string `json:"photoUrl"`
	Caption  string `json:"caption"`
	Mood     string `json:"mood"`
}

// GeneratedStory is the single synthesized artifact for a space.
// Mode discriminates the content shape: narrative stories carry Content,
// scrapbook stories carry Captions in input order. At most one record
// exists per space; regeneration replaces it in place.
type GeneratedStory struct {
	ID        string         `json:"id"`
	SpaceID   string         `json:"spaceId"`
	Mode      StoryMode      `json:"mode"`
	Title     string         `json:"title"`
	Content   string         `json:"content,omitempty"`
	Captions  []PhotoCaption `json:"captions,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}
