package story

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youspace/youspace/internal/model"
)

type fakeCompleter struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fakeVision struct {
	caption   string
	err       error
	lastImage string
}

func (f *fakeVision) CompleteVision(ctx context.Context, instruction, imageURL string, maxTokens int) (string, error) {
	f.lastImage = imageURL
	if f.err != nil {
		return "", f.err
	}
	return f.caption, nil
}

func testMemories(n int) []MemoryInput {
	out := make([]MemoryInput, n)
	for i := range out {
		out[i] = MemoryInput{
			DisplayName: fmt.Sprintf("Contributor %d", i+1),
			Note:        fmt.Sprintf("note %d", i+1),
			PhotoURL:    fmt.Sprintf("/objects/uploads/p%d.jpg", i+1),
		}
	}
	return out
}

func newTestGenerator(c Completer, v VisionCompleter) *Generator {
	return New(c, v, zerolog.Nop())
}

func TestGenerateNarrativeSuccess(t *testing.T) {
	fc := &fakeCompleter{response: `{"title":"Weekend at the Lake","content":"# Weekend at the Lake\n\n## 🏞 Morning\nWe arrived early."}`}
	g := newTestGenerator(fc, nil)

	res := g.Generate(context.Background(), model.ModeNarrative, testMemories(2))
	assert.Equal(t, model.ModeNarrative, res.Mode)
	assert.Equal(t, "Weekend at the Lake", res.Title)
	assert.Contains(t, res.Content, "## 🏞 Morning")
	assert.Empty(t, res.Captions)

	// Prompt embeds every memory as an enumerated block.
	require.Len(t, fc.prompts, 1)
	assert.Contains(t, fc.prompts[0], `Memory 1 by Contributor 1: "note 1"`)
	assert.Contains(t, fc.prompts[0], `Memory 2 by Contributor 2: "note 2"`)
}

func TestGenerateNarrativeDefaultTitle(t *testing.T) {
	fc := &fakeCompleter{response: `{"content":"## A Day\nIt happened."}`}
	g := newTestGenerator(fc, nil)

	res := g.Generate(context.Background(), model.ModeNarrative, testMemories(1))
	assert.Equal(t, defaultNarrativeTitle, res.Title)
}

func TestGenerateScrapbookSuccess(t *testing.T) {
	mems := testMemories(3)
	captions := make([]map[string]string, len(mems))
	for i, m := range mems {
		captions[i] = map[string]string{
			"photoUrl": m.PhotoURL,
			"caption":  fmt.Sprintf("caption %d 🌤", i+1),
			"emoji":    "🌤",
		}
	}
	raw, _ := json.Marshal(map[string]any{"title": "Our Days Together", "captions": captions})
	g := newTestGenerator(&fakeCompleter{response: string(raw)}, nil)

	res := g.Generate(context.Background(), model.ModeScrapbook, mems)
	assert.Equal(t, model.ModeScrapbook, res.Mode)
	assert.Equal(t, "Our Days Together", res.Title)
	require.Len(t, res.Captions, len(mems))
	for i, c := range res.Captions {
		assert.Equal(t, mems[i].PhotoURL, c.PhotoURL, "captions preserve input order")
		assert.NotEmpty(t, c.Caption)
		assert.Equal(t, "🌤", c.Mood)
	}
}

func TestGenerateFallsBackOnTransportError(t *testing.T) {
	g := newTestGenerator(&fakeCompleter{err: errors.New("connection refused")}, nil)
	mems := testMemories(4)

	for _, mode := range []model.StoryMode{model.ModeNarrative, model.ModeScrapbook} {
		res := g.Generate(context.Background(), mode, mems)
		assert.Equal(t, mode, res.Mode)
		assert.NotEmpty(t, res.Title)
		if mode == model.ModeScrapbook {
			require.Len(t, res.Captions, len(mems), "fallback covers every memory")
			seen := map[string]bool{}
			for _, c := range res.Captions {
				assert.False(t, seen[c.PhotoURL], "no duplicates")
				seen[c.PhotoURL] = true
				assert.NotEmpty(t, c.Caption)
				assert.NotEmpty(t, c.Mood)
			}
		} else {
			require.NotEmpty(t, res.Content)
			for _, m := range mems {
				assert.Contains(t, res.Content, m.Note, "fallback narrative keeps every note")
			}
		}
	}
}

func TestGenerateFallsBackOnMalformedJSON(t *testing.T) {
	g := newTestGenerator(&fakeCompleter{response: "I'm sorry, I can't do that"}, nil)
	mems := testMemories(2)

	res := g.Generate(context.Background(), model.ModeScrapbook, mems)
	require.Len(t, res.Captions, 2)
	assert.Equal(t, mems[0].PhotoURL, res.Captions[0].PhotoURL)
}

func TestGenerateFallbackIsDeterministic(t *testing.T) {
	g := newTestGenerator(&fakeCompleter{err: errors.New("down")}, nil)
	mems := testMemories(5)

	first := g.Generate(context.Background(), model.ModeScrapbook, mems)
	second := g.Generate(context.Background(), model.ModeScrapbook, mems)
	assert.Equal(t, first, second)
}

func TestGenerateScrapbookRejectsRewrittenURL(t *testing.T) {
	mems := testMemories(2)
	raw := `{"title":"t","captions":[
        {"photoUrl":"/objects/uploads/p1.jpg","caption":"ok 🌞","emoji":"🌞"},
        {"photoUrl":"https://elsewhere.example/rewritten.jpg","caption":"bad","emoji":"🌧"}]}`
	g := newTestGenerator(&fakeCompleter{response: raw}, nil)

	// A rewritten URL breaks the caption-to-photo binding; the whole
	// response is rejected in favor of the fallback.
	res := g.Generate(context.Background(), model.ModeScrapbook, mems)
	require.Len(t, res.Captions, 2)
	assert.Equal(t, mems[1].PhotoURL, res.Captions[1].PhotoURL)
	assert.Contains(t, res.Captions[1].Caption, mems[1].Note)
}

func TestGenerateScrapbookRejectsDroppedPhoto(t *testing.T) {
	mems := testMemories(3)
	raw := `{"title":"t","captions":[{"photoUrl":"/objects/uploads/p1.jpg","caption":"only one 🌞","emoji":"🌞"}]}`
	g := newTestGenerator(&fakeCompleter{response: raw}, nil)

	res := g.Generate(context.Background(), model.ModeScrapbook, mems)
	require.Len(t, res.Captions, 3, "no input may be dropped")
}

func TestGenerateScrapbookRejectsDuplicateURL(t *testing.T) {
	mems := testMemories(2)
	raw := `{"title":"t","captions":[
        {"photoUrl":"/objects/uploads/p1.jpg","caption":"a 🌞","emoji":"🌞"},
        {"photoUrl":"/objects/uploads/p1.jpg","caption":"b 🌞","emoji":"🌞"}]}`
	g := newTestGenerator(&fakeCompleter{response: raw}, nil)

	res := g.Generate(context.Background(), model.ModeScrapbook, mems)
	assert.Equal(t, mems[1].PhotoURL, res.Captions[1].PhotoURL)
}

func TestGenerateUnknownModeDefaultsToNarrative(t *testing.T) {
	fc := &fakeCompleter{response: `{"title":"t","content":"body"}`}
	g := newTestGenerator(fc, nil)

	res := g.Generate(context.Background(), model.StoryMode("haiku"), testMemories(1))
	assert.Equal(t, model.ModeNarrative, res.Mode)
}

func TestCaptionPhoto(t *testing.T) {
	fv := &fakeVision{caption: "Quiet morning by the window ☕"}
	g := newTestGenerator(&fakeCompleter{}, fv)

	got := g.CaptionPhoto(context.Background(), "https://example.com/p.jpg", "")
	assert.Equal(t, "Quiet morning by the window ☕", got)
	assert.Equal(t, "https://example.com/p.jpg", fv.lastImage)
}

func TestCaptionPhotoAddsDataURIHeader(t *testing.T) {
	fv := &fakeVision{caption: "ok ✨"}
	g := newTestGenerator(&fakeCompleter{}, fv)

	g.CaptionPhoto(context.Background(), "aGVsbG8=", "")
	assert.Equal(t, "data:image/jpeg;base64,aGVsbG8=", fv.lastImage)

	g.CaptionPhoto(context.Background(), "data:image/png;base64,aGVsbG8=", "")
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", fv.lastImage, "existing header kept")
}

func TestCaptionPhotoFallsBack(t *testing.T) {
	g := newTestGenerator(&fakeCompleter{}, &fakeVision{err: errors.New("quota")})
	assert.Equal(t, fallbackPhotoCaption, g.CaptionPhoto(context.Background(), "aGVsbG8=", ""))

	// No vision capability configured at all.
	g2 := newTestGenerator(&fakeCompleter{}, nil)
	assert.Equal(t, fallbackPhotoCaption, g2.CaptionPhoto(context.Background(), "aGVsbG8=", ""))
}
