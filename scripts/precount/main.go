package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/sj26/syllable/src/dict"
)

const defaultCorpus = "data/cmudict-0.7b.txt"

// Prints corpus-derived syllable counts as sorted "WORD COUNT" lines, for
// eyeballing what the dictionary will serve.
func main() {
	path := defaultCorpus
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Printf("encountered error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	counts, err := dict.ParseCorpus(f)
	if err != nil {
		fmt.Printf("encountered error: %v\n", err)
		os.Exit(1)
	}

	words := make([]string, 0, len(counts))
	for word := range counts {
		words = append(words, word)
	}
	sort.Strings(words)

	for _, word := range words {
		fmt.Printf("%s %d\n", word, counts[word])
	}
}
