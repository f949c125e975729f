package syllable

// Lookup reports the syllable count a dictionary has recorded for a word.
// The boolean distinguishes a stored value (legitimately zero only for
// malformed corpus data) from an absent entry; only absence should trigger
// the heuristic fallback.
type Lookup interface {
	Count(word string) (int, bool)
}

// Counter sums syllable counts across a passage of text.
type Counter struct {
	dict Lookup
}

// NewCounter returns a Counter backed by dict. A nil dict yields a counter
// that relies on the heuristic alone.
func NewCounter(dict Lookup) *Counter {
	return &Counter{dict: dict}
}

// CountWord returns the syllable count for a single word, preferring the
// dictionary and falling back to Guess when the word is unknown. Dictionary
// hits are returned verbatim; only the heuristic floors its result at 1.
func (c *Counter) CountWord(word string) int {
	if c.dict != nil {
		if count, ok := c.dict.Count(word); ok {
			return count
		}
	}
	return Guess(word)
}

// Count tokenizes text and sums the syllable counts of every resulting
// word, spelled-out numbers included.
func (c *Counter) Count(text string) int {
	total := 0
	for _, token := range Words(text) {
		for _, word := range token.Words() {
			total += c.CountWord(word)
		}
	}
	return total
}
