// Package layout derives visual styling metadata for rendered memory
// items. All functions are pure: the same index or space id always
// yields the same result, so a re-render or poster export matches what
// the contributor saw on screen. Do not introduce a randomness source
// here.
package layout

// Frame is the decorative border treatment for one photo.
type Frame string

const (
	FramePolaroid Frame = "polaroid"
	FrameTaped    Frame = "taped"
	FrameTorn     Frame = "torn"
	FramePostcard Frame = "postcard"
)

// NoteStyle is the typographic treatment for a memory's note.
type NoteStyle string

const (
	NoteHandwritten NoteStyle = "handwritten"
	NoteTypewriter  NoteStyle = "typewriter"
	NoteSticky      NoteStyle = "sticky"
)

// Pattern is the macro grid layout for a whole space.
type Pattern string

const (
	PatternMasonry     Pattern = "masonry"
	PatternStacked     Pattern = "stacked"
	PatternAlternating Pattern = "alternating"
	PatternFilmstrip   Pattern = "filmstrip"
)

var (
	frames     = []Frame{FramePolaroid, FrameTaped, FrameTorn, FramePostcard}
	noteStyles = []NoteStyle{NoteHandwritten, NoteTypewriter, NoteSticky}
	patterns   = []Pattern{PatternMasonry, PatternStacked, PatternAlternating, PatternFilmstrip}

	// Half-degree tilt steps within [-3, +3]. Ordered so consecutive
	// items alternate direction.
	rotations = []float64{-3, 2, -1.5, 2.5, -2, 1, -0.5, 3, -2.5, 0.5, 1.5, -1}
)

// Assignment is the derived style tuple for one memory item. It is
// recomputed on every render, never persisted.
type Assignment struct {
	Frame           Frame     `json:"frame"`
	RotationDegrees float64   `json:"rotationDegrees"`
	NoteStyle       NoteStyle `json:"noteStyle"`
}

// Assign returns the style tuple for the item at the given ordinal
// index. Negative indices are treated as zero.
func Assign(index int) Assignment {
	if index < 0 {
		index = 0
	}
	return Assignment{
		Frame:           frames[index%len(frames)],
		RotationDegrees: rotations[index%len(rotations)],
		NoteStyle:       noteStyles[index%len(noteStyles)],
	}
}

// GridPattern folds an order-dependent hash of the space id into the
// fixed pattern set, so a space always renders with the same macro
// layout while different spaces are likely to differ.
func GridPattern(spaceID string) Pattern {
	var h uint32
	for _, c := range spaceID {
		h = h*31 + uint32(c)
	}
	return patterns[h%uint32(len(patterns))]
}
