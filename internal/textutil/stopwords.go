package textutil

import "strings"

// stopwordList matches the stopword inventory used for frequency scoring.
// Changing it changes which sentences a summary selects, so it is fixed.
const stopwordList = `
a an the and is are was were in on of for to with by that this it as at from be or
about into over after before under between during through up down out off above below
can could should would may might shall will just not no nor so such than then too very
`

var stopwords = buildStopwords()

func buildStopwords() map[string]struct{} {
	words := strings.Fields(stopwordList)
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// IsStopword reports whether the (already lowercased) word carries no
// topical signal and should be excluded from frequency counting.
func IsStopword(word string) bool {
	_, ok := stopwords[word]
	return ok
}
