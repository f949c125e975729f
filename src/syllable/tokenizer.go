package syllable

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/divan/num2words"
)

// tokenRegex recognizes, at each position, either an alphabetic word or a
// numeric expression ("1,000", "$2", "$ 15"). A currency marker on its own
// never matches; it is only consumed together with digits.
var tokenRegex = regexp.MustCompile(`([a-zA-Z][a-zA-Z'-]*)|(\$?)\s?((?:\d+,?)+)`)

var possessiveRegex = regexp.MustCompile(`(?i)('s|s')$`)

var apostrophes = strings.NewReplacer("’", "'", "‘", "'")

// Token is a single countable unit: either a word taken from the text or
// the spelled-out expansion of a numeric literal.
type Token struct {
	Text      string
	Expansion []string
}

// Words flattens a token to the words that should be counted for it.
func (t Token) Words() []string {
	if t.Expansion != nil {
		return t.Expansion
	}
	return []string{t.Text}
}

// Words splits text into countable tokens. Words keep interior apostrophes,
// but a trailing possessive ('s or s') is rewritten to a plain s. Numeric
// expressions are expanded to their English spelling, with a trailing
// "dollar" when a currency marker preceded the digits. Everything else is
// skipped.
func Words(text string) []Token {
	var tokens []Token
	for _, m := range tokenRegex.FindAllStringSubmatch(apostrophes.Replace(text), -1) {
		if m[1] != "" {
			tokens = append(tokens, Token{Text: possessiveRegex.ReplaceAllString(m[1], "s")})
			continue
		}
		n, err := strconv.Atoi(stripNonDigits(m[0]))
		if err != nil {
			continue // too large to spell out
		}
		words := spellOut(n)
		if m[2] != "" {
			words = append(words, "dollar")
		}
		tokens = append(tokens, Token{Expansion: words})
	}
	return tokens
}

// Flatten expands tokens into the flat word sequence the counter consumes.
func Flatten(tokens []Token) []string {
	var words []string
	for _, t := range tokens {
		words = append(words, t.Words()...)
	}
	return words
}

// spellOut expands n to its cardinal English spelling, one word per element,
// e.g. 2012 -> ["two", "thousand", "and", "twelve"].
func spellOut(n int) []string {
	return strings.Fields(num2words.ConvertAnd(n))
}

func stripNonDigits(s string) string {
	var result strings.Builder
	for i := 0; i < len(s); i++ {
		if '0' <= s[i] && s[i] <= '9' {
			result.WriteByte(s[i])
		}
	}
	return result.String()
}
