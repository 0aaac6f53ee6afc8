package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpaceID(t *testing.T) {
	assert.NoError(t, SpaceID("family-trip_2026"))
	assert.Error(t, SpaceID(""))
	assert.Error(t, SpaceID("has space"))
	assert.Error(t, SpaceID("slash/id"))
	assert.Error(t, SpaceID(strings.Repeat("a", 65)))
	assert.NoError(t, SpaceID(strings.Repeat("a", 64)))
}

func TestAddMemory(t *testing.T) {
	ok := func() (string, string, string, string) {
		return "trip", "Ana", "first snow of the year", "/objects/a.jpg"
	}

	s, d, n, p := ok()
	assert.NoError(t, AddMemory(s, d, n, p))

	assert.Error(t, AddMemory("", d, n, p))
	assert.Error(t, AddMemory(s, "", n, p))
	assert.Error(t, AddMemory(s, d, "", p))
	assert.Error(t, AddMemory(s, d, n, ""))
	assert.Error(t, AddMemory(s, strings.Repeat("x", 101), n, p))
	assert.Error(t, AddMemory(s, d, strings.Repeat("x", 2001), p))
}
