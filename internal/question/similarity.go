package question

import (
	"regexp"
	"strings"
)

var punctRe = regexp.MustCompile(`[^\w\s]`)

// Similarity returns the Jaccard word-set similarity between two texts:
// the ratio of shared words to total distinct words. Case and punctuation
// are ignored. Returns 0 when both texts are empty.
//
// This is a cheap bag-of-words duplicate detector, not a semantic
// comparison.
func Similarity(a, b string) float64 {
	wordsA := wordSet(a)
	wordsB := wordSet(b)

	union := len(wordsB)
	intersection := 0
	for w := range wordsA {
		if _, ok := wordsB[w]; ok {
			intersection++
		} else {
			union++
		}
	}

	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func wordSet(s string) map[string]struct{} {
	normalized := punctRe.ReplaceAllString(strings.ToLower(s), "")
	set := make(map[string]struct{})
	for _, w := range strings.Fields(normalized) {
		set[w] = struct{}{}
	}
	return set
}
