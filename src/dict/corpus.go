package dict

import (
	"bufio"
	"io"
	"strings"
)

// ParseCorpus reads a raw pronunciation corpus, one entry per line, in the
// form "HEADWORD  PHON1 PHON2 ...". Lines that do not begin with an
// uppercase letter (headers, comments) and lines without phoneme fields are
// skipped. A phoneme contributes a syllable when it begins with a vowel
// letter.
func ParseCorpus(r io.Reader) (map[string]int, error) {
	counts := make(map[string]int)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 || line[0] < 'A' || line[0] > 'Z' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		count := 0
		for _, phoneme := range fields[1:] {
			switch phoneme[0] {
			case 'A', 'E', 'I', 'O', 'U':
				count++
			}
		}
		counts[fields[0]] = count
	}
	return counts, scanner.Err()
}
