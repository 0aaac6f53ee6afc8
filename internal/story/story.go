// Package story turns a space's collected memories into a memory book.
// It owns prompt construction, response parsing and the deterministic
// fallback used whenever the external generation service misbehaves.
// Generation never fails from the caller's point of view.
package story

import (
	"context"

	"github.com/youspace/youspace/internal/model"
)

// MemoryInput is the slice of a memory the generator needs.
type MemoryInput struct {
	DisplayName string
	Note        string
	PhotoURL    string
}

// Result is the generated memory book before persistence. Exactly one
// of Content/Captions is populated, selected by Mode.
type Result struct {
	Mode     model.StoryMode
	Title    string
	Content  string
	Captions []model.PhotoCaption
}

// Completer is the external text-generation capability. Implementations
// must request a JSON-formatted response; the raw text is returned
// as-is and parsed here. Transport failures, timeouts and garbage
// output are all recoverable.
type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// VisionCompleter captions a single image.
type VisionCompleter interface {
	CompleteVision(ctx context.Context, instruction, imageURL string, maxTokens int) (string, error)
}
