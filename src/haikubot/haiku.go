package haikubot

import (
	"fmt"
	"strings"

	"github.com/sj26/syllable/src/syllable"
)

var lineCounts = [3]int{5, 7, 5}

// Validate reports why text does not scan as a 5-7-5 haiku, or nil when it
// does. Counting never fails outright: unknown words are estimated, so a
// poor estimate can misjudge a line, but a verdict is always reached.
func Validate(c *syllable.Counter, text string) error {
	trimmed := strings.Trim(text, " \n\t")
	lines := strings.Split(trimmed, "\n")
	if len(lines) != 3 {
		return fmt.Errorf("a haiku has 3 lines, found %d", len(lines))
	}
	for i, line := range lines {
		count := c.Count(line)
		if count != lineCounts[i] {
			return fmt.Errorf("line %d should have %d syllables, counted %d", i+1, lineCounts[i], count)
		}
	}
	return nil
}

func IsHaiku(c *syllable.Counter, text string) bool {
	return Validate(c, text) == nil
}
