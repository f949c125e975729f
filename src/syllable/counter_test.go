package syllable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mapLookup map[string]int

func (m mapLookup) Count(word string) (int, bool) {
	count, ok := m[strings.ToUpper(word)]
	return count, ok
}

func TestCountWord(t *testing.T) {
	c := NewCounter(mapLookup{"SODA": 2, "ODD": 9})

	assert.Equal(t, 2, c.CountWord("soda"))
	assert.Equal(t, 9, c.CountWord("odd"))       // the dictionary wins over the heuristic
	assert.Equal(t, 3, c.CountWord("attitudes")) // a miss falls back to the heuristic
}

func TestCountWordStoredZeroIsNotFloored(t *testing.T) {
	// only the heuristic floors at 1; a stored value is returned verbatim
	c := NewCounter(mapLookup{"GLITCH": 0})
	assert.Equal(t, 0, c.CountWord("glitch"))
}

func TestCountWordWithoutDictionary(t *testing.T) {
	c := NewCounter(nil)
	assert.Equal(t, 2, c.CountWord("soda"))
	assert.Equal(t, 1, c.CountWord("don't"))
	assert.Equal(t, 2, c.CountWord("Springbok"))
}

func TestCount(t *testing.T) {
	c := NewCounter(nil)

	tests := []struct {
		text     string
		expected int
	}{
		{"An old silent pond...", 5},
		{"$2 soda", 5}, // two dollar soda
		{"others' attitudes", 5},
		{"", 0},
		{"?!$", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, c.Count(tt.text), tt.text)
	}
}
