package poster

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/youspace/youspace/internal/layout"
	"github.com/youspace/youspace/internal/model"
)

func scrapbookStory(n int) *model.GeneratedStory {
	captions := make([]model.PhotoCaption, n)
	for i := range captions {
		captions[i] = model.PhotoCaption{
			PhotoURL: fmt.Sprintf("/objects/p%d.jpg", i+1),
			Caption:  fmt.Sprintf("caption %d", i+1),
			Mood:     "✨",
		}
	}
	return &model.GeneratedStory{
		SpaceID: "trip", Mode: model.ModeScrapbook, Title: "Our Days", Captions: captions,
	}
}

func TestRenderScrapbook(t *testing.T) {
	got := Render(scrapbookStory(5))

	assert.Contains(t, got, `data-pattern="`+string(layout.GridPattern("trip"))+`"`)
	assert.Contains(t, got, "<h1>Our Days</h1>")
	assert.Equal(t, 5, strings.Count(got, "<figure"))
	for i := 0; i < 5; i++ {
		a := layout.Assign(i)
		assert.Contains(t, got, fmt.Sprintf(`class="frame-%s note-%s"`, a.Frame, a.NoteStyle))
	}
}

func TestRenderNarrative(t *testing.T) {
	st := &model.GeneratedStory{
		SpaceID: "trip", Mode: model.ModeNarrative, Title: "Day One",
		Content: "# Day One\n\n## 🏞 Morning\nWe arrived early.",
	}
	got := Render(st)

	assert.Contains(t, got, "<h1>Day One</h1>")
	assert.Equal(t, 1, strings.Count(got, "<h1>"), "body heading not duplicated")
	assert.Contains(t, got, "<h2>🏞 Morning</h2>")
	assert.Contains(t, got, "<p>We arrived early.</p>")
}

func TestRenderNarrativeWithoutBodyHeading(t *testing.T) {
	st := &model.GeneratedStory{
		SpaceID: "trip", Mode: model.ModeNarrative, Title: "Untitled Day",
		Content: "Just a paragraph.",
	}
	got := Render(st)
	assert.Contains(t, got, "<h1>Untitled Day</h1>")
}

func TestRenderIsDeterministic(t *testing.T) {
	st := scrapbookStory(8)
	assert.Equal(t, Render(st), Render(st))
}

func TestRenderEscapesContent(t *testing.T) {
	st := scrapbookStory(1)
	st.Captions[0].Caption = `<script>alert("x")</script>`
	got := Render(st)
	assert.NotContains(t, got, "<script>")
	assert.Contains(t, got, "&lt;script&gt;")
}
