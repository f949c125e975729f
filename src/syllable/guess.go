package syllable

import (
	"regexp"
	"strings"
)

// The estimator counts maximal vowel runs and then applies two fixed lists
// of corrections. Each rule fires at most once, independently of the
// others, so several rules may adjust the same word. The lists are
// empirically tuned against a pronunciation corpus; changing them changes
// the counts of the regression fixtures.
type rule struct {
	name    string
	pattern *regexp.Regexp
}

const doubledConsonant = `bb|cc|dd|ff|gg|kk|ll|mm|nn|pp|rr|ss|tt|vv|zz`

var subtractRules = []rule{
	{"silent-e", regexp.MustCompile(`[^aeiou]e$`)},
	{"ed-es-ending", regexp.MustCompile(`[aeiou](?:` + doubledConsonant + `|ck|sh|rch|tch|[^aeiouy])e[ds]$`)},
	{"silent-e-suffix", regexp.MustCompile(`e(?:ly|less(?:ly)?|ness|ment(?:s)?|ful(?:ly)?)$`)},
	{"ion", regexp.MustCompile(`ion`)},
	{"cia-tia", regexp.MustCompile(`(?:cia|tia)[nl]`)},
	{"iou", regexp.MustCompile(`[^cx]iou`)},
	{"sia", regexp.MustCompile(`sia$`)},
	{"gue", regexp.MustCompile(`gue$`)},
}

var addRules = []rule{
	{"i-diphthong", regexp.MustCompile(`i[aiou]`)},
	{"ien", regexp.MustCompile(`[dls]ien`)},
	{"ble", regexp.MustCompile(`[aeiouym]ble$`)},
	{"triple-vowel", regexp.MustCompile(`[aeiou]{3}`)},
	{"mc", regexp.MustCompile(`^mc`)},
	{"ism", regexp.MustCompile(`ism$`)},
	{"consonant-le", regexp.MustCompile(`(?:` + doubledConsonant + `|ck|mp|ng)le$`)},
	{"dnt", regexp.MustCompile(`dnt$`)},
	{"y-glide", regexp.MustCompile(`[aeiou]y[aeiou]`)},
}

var vowelRun = regexp.MustCompile(`[aeiouy]+`)

// Guess estimates the syllable count of a word without consulting the
// dictionary. The result is always at least 1.
func Guess(word string) int {
	w := strings.ReplaceAll(apostrophes.Replace(word), "'", "")
	if len(w) == 1 {
		return 1
	}
	w = strings.ToLower(w)
	count := len(vowelRun.FindAllString(w, -1))
	for _, r := range subtractRules {
		if r.pattern.MatchString(w) {
			count--
		}
	}
	for _, r := range addRules {
		if r.pattern.MatchString(w) {
			count++
		}
	}
	if count < 1 {
		return 1
	}
	return count
}
