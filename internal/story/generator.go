package story

import (
	"context"
	"encoding/json"
	"regexp"
	"time"

	"github.com/rs/zerolog"

	"github.com/youspace/youspace/internal/model"
)

const (
	defaultNarrativeTitle = "Our Travel Journal"
	defaultScrapbookTitle = "Our Memory Book"

	fallbackPhotoCaption = "A moment worth keeping ✨"

	captionInstruction = "Write a gentle scrapbook-style caption for this photo: at most 20 words, calm and grounded in the scene, ending with one fitting emoji."
)

// Generator produces memory books. The zero value is not usable;
// construct with New.
type Generator struct {
	completer Completer
	vision    VisionCompleter
	log       zerolog.Logger

	timeout          time.Duration
	storyMaxTokens   int
	captionMaxTokens int
}

// Option tweaks a Generator.
type Option func(*Generator)

// WithTimeout bounds each external call. Timeouts degrade to the
// fallback like any other failure.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) { g.timeout = d }
}

// WithMaxTokens sets the output budgets for story and caption calls.
func WithMaxTokens(story, caption int) Option {
	return func(g *Generator) {
		g.storyMaxTokens = story
		g.captionMaxTokens = caption
	}
}

// New builds a Generator. vision may be nil when single-photo
// captioning is not configured; CaptionPhoto then always falls back.
func New(completer Completer, vision VisionCompleter, log zerolog.Logger, opts ...Option) *Generator {
	g := &Generator{
		completer:        completer,
		vision:           vision,
		log:              log,
		timeout:          30 * time.Second,
		storyMaxTokens:   2000,
		captionMaxTokens: 300,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate synthesizes a memory book for a non-empty ordered memory
// list. It never returns an error: any external failure, timeout or
// malformed response degrades to the deterministic fallback, which
// covers every input memory.
func (g *Generator) Generate(ctx context.Context, mode model.StoryMode, memories []MemoryInput) Result {
	if len(memories) == 0 {
		// Callers validate this; an empty book is still well-formed.
		return Result{Mode: mode, Title: fallbackTitle(nil)}
	}

	var prompt string
	switch mode {
	case model.ModeScrapbook:
		prompt = scrapbookPrompt(memories)
	default:
		mode = model.ModeNarrative
		prompt = narrativePrompt(memories)
	}

	cctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.completer.Complete(cctx, prompt, g.storyMaxTokens)
	if err != nil {
		g.log.Warn().Err(err).Str("mode", string(mode)).Msg("generation call failed, using fallback")
		return g.fallback(mode, memories)
	}

	res, err := parse(mode, raw, memories)
	if err != nil {
		g.log.Warn().Err(err).Str("mode", string(mode)).Msg("generation response rejected, using fallback")
		return g.fallback(mode, memories)
	}
	return res
}

func (g *Generator) fallback(mode model.StoryMode, memories []MemoryInput) Result {
	if mode == model.ModeScrapbook {
		return fallbackScrapbook(memories)
	}
	return fallbackNarrative(memories)
}

type narrativeResponse struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type scrapbookResponse struct {
	Title    string `json:"title"`
	Captions []struct {
		PhotoURL string `json:"photoUrl"`
		Caption  string `json:"caption"`
		Emoji    string `json:"emoji"`
	} `json:"captions"`
}

// parse validates the raw model output. Scrapbook responses must echo
// every input photo URL exactly once; anything else is a data-quality
// defect and rejected rather than silently corrected.
func parse(mode model.StoryMode, raw string, memories []MemoryInput) (Result, error) {
	if mode == model.ModeScrapbook {
		var resp scrapbookResponse
		if err := json.Unmarshal([]byte(raw), &resp); err != nil {
			return Result{}, errMalformed("scrapbook", err)
		}
		if len(resp.Captions) != len(memories) {
			return Result{}, errCardinality(len(resp.Captions), len(memories))
		}
		seen := make(map[string]bool, len(memories))
		want := make(map[string]bool, len(memories))
		for _, m := range memories {
			want[m.PhotoURL] = true
		}
		captions := make([]model.PhotoCaption, len(resp.Captions))
		for i, c := range resp.Captions {
			if !want[c.PhotoURL] || seen[c.PhotoURL] {
				return Result{}, errBrokenBinding(c.PhotoURL)
			}
			seen[c.PhotoURL] = true
			if c.Caption == "" {
				return Result{}, errEmptyCaption(c.PhotoURL)
			}
			captions[i] = model.PhotoCaption{PhotoURL: c.PhotoURL, Caption: c.Caption, Mood: c.Emoji}
		}
		title := resp.Title
		if title == "" {
			title = defaultScrapbookTitle
		}
		return Result{Mode: mode, Title: title, Captions: captions}, nil
	}

	var resp narrativeResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return Result{}, errMalformed("narrative", err)
	}
	if resp.Content == "" {
		return Result{}, errEmptyBody()
	}
	title := resp.Title
	if title == "" {
		title = defaultNarrativeTitle
	}
	return Result{Mode: mode, Title: title, Content: resp.Content}, nil
}

var httpURLRe = regexp.MustCompile(`(?i)^https?://`)
var dataURIRe = regexp.MustCompile(`(?i)^data:image/\w+;base64,`)

// CaptionPhoto captions a single image via the vision capability. image
// may be an http(s) URL, a data URI, or raw base64 (a jpeg data-URI
// header is added in that case). Failures degrade to a fixed caption.
func (g *Generator) CaptionPhoto(ctx context.Context, image, note string) string {
	if g.vision == nil {
		return fallbackPhotoCaption
	}

	imageForAPI := image
	if !httpURLRe.MatchString(image) && !dataURIRe.MatchString(image) {
		imageForAPI = "data:image/jpeg;base64," + image
	}

	instruction := captionInstruction
	if note != "" {
		instruction += " The contributor's note: " + note
	}

	cctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	caption, err := g.vision.CompleteVision(cctx, instruction, imageForAPI, g.captionMaxTokens)
	if err != nil || caption == "" {
		g.log.Warn().Err(err).Msg("caption call failed, using fallback")
		return fallbackPhotoCaption
	}
	return caption
}
