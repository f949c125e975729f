package syllable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"An old silent pond...", []string{"An", "old", "silent", "pond"}},
		{"others' attitudes are, you", []string{"others", "attitudes", "are", "you"}},
		{"dog's day", []string{"dogs", "day"}},
		{"Didn't won't aren't bad", []string{"Didn't", "won't", "aren't", "bad"}},
		{"don’t stop", []string{"don't", "stop"}},
		{"1! 2? 3^ 4* 5()", []string{"one", "two", "three", "four", "five"}},
		{"$2 soda\nin 2012", []string{"two", "dollar", "soda", "in", "two", "thousand", "and", "twelve"}},
		{"1,000 cranes", []string{"one", "thousand", "cranes"}},
		{"mother-in-law", []string{"mother-in-law"}},
		{"", nil},
		{"?!... --- $", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Flatten(Words(tt.input)), tt.input)
	}
}

func TestWordsNumberExpansion(t *testing.T) {
	tokens := Words("$2 soda")
	assert.Len(t, tokens, 2)
	assert.Equal(t, []string{"two", "dollar"}, tokens[0].Expansion)
	assert.Equal(t, "soda", tokens[1].Text)
	assert.Equal(t, []string{"soda"}, tokens[1].Words())
}

func TestWordsDollarWithoutDigits(t *testing.T) {
	assert.Empty(t, Words("$"))
	assert.Equal(t, []string{"cash"}, Flatten(Words("$ cash")))
}

func TestWordsRejoinIdempotent(t *testing.T) {
	input := "An old silent pond frogs jump in softly"
	first := Flatten(Words(input))
	second := Flatten(Words(strings.Join(first, " ")))
	assert.Equal(t, first, second)
}
