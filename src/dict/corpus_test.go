package dict

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCorpus(t *testing.T) {
	corpus := `;;; comment header
AMNESIA  AE0 M N IY1 ZH AH0
DOG  D AO1 G
DON'T  D OW1 N T
lowercase ignored
HMM  HH M
SODA  S OW1 D AH0
ZILCH
`
	counts, err := ParseCorpus(strings.NewReader(corpus))
	assert.NoError(t, err)
	assert.Equal(t, map[string]int{
		"AMNESIA": 3,
		"DOG":     1,
		"DON'T":   1,
		"HMM":     0, // no vowel-led phonemes; stored as-is, not floored
		"SODA":    2,
	}, counts)
}

func TestParseCorpusEmpty(t *testing.T) {
	counts, err := ParseCorpus(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, counts)
}
