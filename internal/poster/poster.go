// Package poster assembles the server-rendered memory-book fragment.
// Output is deterministic for a given story: layout comes from the
// index/key-pure assignment in internal/layout and the prose path goes
// through the markdown subset renderer, so an export always matches
// the on-screen rendering.
package poster

import (
	"fmt"
	"html"
	"strings"

	"github.com/youspace/youspace/internal/layout"
	"github.com/youspace/youspace/internal/markdown"
	"github.com/youspace/youspace/internal/model"
)

// Render returns the poster HTML fragment for a stored story.
func Render(st *model.GeneratedStory) string {
	pattern := layout.GridPattern(st.SpaceID)

	var b strings.Builder
	fmt.Fprintf(&b, `<article class="poster %s" data-pattern="%s">`, st.Mode, pattern)

	if st.Mode == model.ModeScrapbook {
		fmt.Fprintf(&b, "<h1>%s</h1>", html.EscapeString(st.Title))
		b.WriteString(`<div class="grid">`)
		for i, c := range st.Captions {
			a := layout.Assign(i)
			fmt.Fprintf(&b,
				`<figure class="frame-%s note-%s" style="transform: rotate(%.1fdeg)">`,
				a.Frame, a.NoteStyle, a.RotationDegrees)
			fmt.Fprintf(&b, `<img src="%s" alt="">`, html.EscapeString(c.PhotoURL))
			fmt.Fprintf(&b, `<figcaption><span class="mood">%s</span> %s</figcaption>`,
				html.EscapeString(c.Mood), html.EscapeString(c.Caption))
			b.WriteString("</figure>")
		}
		b.WriteString("</div>")
	} else {
		// Narrative bodies usually open with their own # heading; only
		// add the stored title when the body does not.
		if !strings.HasPrefix(strings.TrimSpace(st.Content), "# ") {
			fmt.Fprintf(&b, "<h1>%s</h1>", html.EscapeString(st.Title))
		}
		b.WriteString(markdown.Render(st.Content))
	}

	b.WriteString("</article>")
	return b.String()
}
