// Package markdown renders the heading-and-prose subset of Markdown
// that the story generation prompt is constrained to emit. It is a
// single-pass line classifier, not a general Markdown parser: only
// "# " and "## " headings and blank-line-separated paragraphs are
// recognized; everything else passes through as literal paragraph text.
package markdown

import (
	"html"
	"strings"
)

// Render converts text into an HTML fragment. Consecutive non-blank
// lines merge into one paragraph joined by spaces; a blank line flushes
// the current paragraph; heading lines flush then emit <h1>/<h2>. All
// text content is HTML-escaped.
func Render(text string) string {
	var out strings.Builder
	var paragraph []string

	flush := func() {
		if len(paragraph) == 0 {
			return
		}
		out.WriteString("<p>")
		out.WriteString(html.EscapeString(strings.Join(paragraph, " ")))
		out.WriteString("</p>")
		paragraph = paragraph[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			flush()
		case strings.HasPrefix(trimmed, "## "):
			flush()
			out.WriteString("<h2>")
			out.WriteString(html.EscapeString(trimmed[3:]))
			out.WriteString("</h2>")
		case strings.HasPrefix(trimmed, "# "):
			flush()
			out.WriteString("<h1>")
			out.WriteString(html.EscapeString(trimmed[2:]))
			out.WriteString("</h1>")
		default:
			paragraph = append(paragraph, trimmed)
		}
	}
	flush()

	return out.String()
}
