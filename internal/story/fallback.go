package story

import (
	"fmt"
	"strings"

	"github.com/youspace/youspace/internal/model"
)

// The fallback must be deterministic: re-running it for the same input
// yields the same memory book, so a re-render after a transient outage
// matches what the contributor already saw.

var fallbackTitles = []string{
	"Precious Memories",
	"Good Times",
	"Fragments of Memory",
	"Small Moments",
	"Our Story",
}

type fallbackCaption struct {
	text string
	mood string
}

var fallbackCaptions = []fallbackCaption{
	{"Sunlight on everything, hearts at ease 🌞", "🌞"},
	{"A warm, ordinary moment ☀️", "☀️"},
	{"A moment worth keeping ✨", "✨"},
	{"A simple, lovely day 🌈", "🌈"},
	{"Small joys in daily life 💫", "💫"},
	{"Time together we won't forget 👫", "👫"},
	{"A quiet afternoon 🍃", "🍃"},
	{"Happy scraps of memory 🎈", "🎈"},
}

func fallbackTitle(memories []MemoryInput) string {
	return fallbackTitles[len(memories)%len(fallbackTitles)]
}

// fallbackNarrative builds a placeholder journal that still records
// every contributed note, so no memory is dropped.
func fallbackNarrative(memories []MemoryInput) Result {
	title := fallbackTitle(memories)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	b.WriteString("## 📷 The Moments We Kept\n")
	fmt.Fprintf(&b, "This space holds %d shared %s. The storyteller could not be reached just now, so here is a simple record of what everyone wrote.\n\n", len(memories), plural(len(memories), "memory", "memories"))
	b.WriteString("## ✏️ In Their Own Words\n")
	for _, m := range memories {
		note := m.Note
		if note == "" {
			note = "a photo, no words needed"
		}
		fmt.Fprintf(&b, "%s wrote: %q\n", m.DisplayName, note)
	}

	return Result{Mode: model.ModeNarrative, Title: title, Content: b.String()}
}

// fallbackScrapbook pairs every input memory with a mood-tagged caption
// drawn round-robin from the fixed pool, keeping the contributor's own
// note when present.
func fallbackScrapbook(memories []MemoryInput) Result {
	captions := make([]model.PhotoCaption, len(memories))
	for i, m := range memories {
		fb := fallbackCaptions[i%len(fallbackCaptions)]
		text := fb.text
		if m.Note != "" {
			text = m.Note + " " + fb.text
		}
		captions[i] = model.PhotoCaption{PhotoURL: m.PhotoURL, Caption: text, Mood: fb.mood}
	}
	return Result{Mode: model.ModeScrapbook, Title: fallbackTitle(memories), Captions: captions}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
