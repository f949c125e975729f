package haikubot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sj26/syllable/src/syllable"
)

var haikus = []string{
	"An old silent pond\nA frog jumps into the pond\nsplash! Silence again",
	"negative space eh,\npositivity you say?\nits all in the mind.",
	"Rules for a Haiku,\nSeven syllables to bridge\nFive syllables; end.",
	"Flowers bloom, Winds change.\nSummer rains, and autumn leaves.\nMount Fuji has snow.",
	"Out of the cold mist\na mountain shadow rising\nwinter light returns",
}

var notHaikus = []string{
	"this is not a haiku",
	"one\ntwo\nthree\nfour",
	"An old silent pond\nA frog jumps in\nsplash",
	"",
}

func TestIsHaiku(t *testing.T) {
	c := syllable.NewCounter(nil)

	for _, haiku := range haikus {
		assert.True(t, IsHaiku(c, haiku), haiku)
	}
	for _, nonHaiku := range notHaikus {
		assert.False(t, IsHaiku(c, nonHaiku), nonHaiku)
	}
}

func TestHaikuCountsSeventeen(t *testing.T) {
	c := syllable.NewCounter(nil)

	for _, haiku := range haikus {
		assert.Equal(t, 17, c.Count(haiku), haiku)
	}
}

func TestValidate(t *testing.T) {
	c := syllable.NewCounter(nil)

	err := Validate(c, "this is not a haiku")
	assert.EqualError(t, err, "a haiku has 3 lines, found 1")

	err = Validate(c, "An old silent pond\nA frog jumps in\nsplash")
	assert.EqualError(t, err, "line 2 should have 7 syllables, counted 4")

	assert.NoError(t, Validate(c, haikus[0]))
}
