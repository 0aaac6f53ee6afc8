package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignIsDeterministic(t *testing.T) {
	for i := 0; i < 50; i++ {
		assert.Equal(t, Assign(i), Assign(i), "index %d", i)
	}
}

func TestAssignCyclesOverFixedEnumerations(t *testing.T) {
	// Values repeat with the enumeration cycle lengths.
	for i := 0; i < 20; i++ {
		assert.Equal(t, Assign(i).Frame, Assign(i+len(frames)).Frame)
		assert.Equal(t, Assign(i).NoteStyle, Assign(i+len(noteStyles)).NoteStyle)
		assert.Equal(t, Assign(i).RotationDegrees, Assign(i+len(rotations)).RotationDegrees)
	}
}

func TestAssignVariesAcrossConsecutiveItems(t *testing.T) {
	a, b := Assign(0), Assign(1)
	assert.NotEqual(t, a.Frame, b.Frame)
	assert.NotEqual(t, a.RotationDegrees, b.RotationDegrees)
}

func TestAssignNegativeIndex(t *testing.T) {
	assert.Equal(t, Assign(0), Assign(-3))
}

func TestRotationsStayWithinBand(t *testing.T) {
	for _, r := range rotations {
		require.GreaterOrEqual(t, r, -3.0)
		require.LessOrEqual(t, r, 3.0)
	}
}

func TestGridPatternStable(t *testing.T) {
	for _, id := range []string{"", "family-trip", "space-42", "御朱印帳"} {
		first := GridPattern(id)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, GridPattern(id))
		}
		assert.Contains(t, patterns, first)
	}
}

func TestGridPatternIsOrderDependent(t *testing.T) {
	// Hash must not be a bag-of-characters: permutations may map to
	// different patterns. These two differ under the 31-multiplier fold.
	assert.NotEqual(t, GridPattern("ab"), GridPattern("ba"))
}
