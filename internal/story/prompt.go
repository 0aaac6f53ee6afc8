package story

import (
	"fmt"
	"strings"
)

const narrativeTemplate = `You are a documentary-style travel journal writer who creates realistic, authentic journals from shared memories. You have been given a collection of photos and notes from a shared space where people have documented their experiences.

Your task is to create a realistic, documentary-style journal in Markdown format. The journal should:

1. Use a calm, reflective, real-life diary tone (not poetic or fictional)
2. Organize chronologically with emoji section markers (e.g. 🏞 Start, 🌲 Path, ❄️ Snow, 🏕 Return)
3. Include short, authentic sentences (3-4 per section) that match the uploaded notes
4. Avoid exaggeration or imagination — keep it real and human
5. Use Markdown headings (# for title, ## for each section) and plain paragraphs only
6. Be between 300-600 words total
7. Match the tone to the context: travel, work, study, daily life, events or friendship are style hints, nothing more

Here are the memories to transform into a journal:

%s

Format your response as strict JSON with two fields:
- "title": a simple, realistic title (e.g. "Weekend at the Lake", "City Exploration")
- "content": the full journal in Markdown format with ## headings for each chronological section`

const scrapbookTemplate = `You are creating a visual scrapbook-style memory book from uploaded photos and notes. Each photo needs a short caption that captures the moment.

Caption style:

1. Short and calm (max 20 words), reflective, grounded in the note
2. Match the emotional tone to the context — travel, daily life, events, work, study, friendship are style hints only
3. No over-explanation; end each caption with one fitting emoji

Here are the photos and notes:

%s

Format your response as strict JSON:
{
  "title": "simple title for the memory book (e.g. 'Weekend Memories', 'Our Days Together')",
  "captions": [
    {
      "photoUrl": "exact photo URL from above",
      "caption": "short caption (max 20 words)",
      "emoji": "single emoji that fits the mood"
    }
  ]
}

Generate a caption for EACH photo, echoing its photo URL exactly as given. Keep captions short, natural and grounded.`

func narrativePrompt(memories []MemoryInput) string {
	blocks := make([]string, len(memories))
	for i, m := range memories {
		blocks[i] = fmt.Sprintf("Memory %d by %s: %q", i+1, m.DisplayName, m.Note)
	}
	return fmt.Sprintf(narrativeTemplate, strings.Join(blocks, "\n\n"))
}

func scrapbookPrompt(memories []MemoryInput) string {
	blocks := make([]string, len(memories))
	for i, m := range memories {
		blocks[i] = fmt.Sprintf("Photo %d by %s: %q\nPhoto URL: %s", i+1, m.DisplayName, m.Note, m.PhotoURL)
	}
	return fmt.Sprintf(scrapbookTemplate, strings.Join(blocks, "\n\n"))
}
