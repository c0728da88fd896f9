package textutil

import (
	"regexp"
	"strings"
)

// wordPattern extracts maximal runs of letters, digits and underscores,
// covering non-Latin scripts the OCR engine may produce.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Tokens normalizes a sentence into scoreable tokens: lowercased word runs
// in left-to-right order, stopwords removed, duplicates retained.
func Tokens(sentence string) []string {
	words := wordPattern.FindAllString(strings.ToLower(sentence), -1)
	tokens := words[:0]
	for _, w := range words {
		if IsStopword(w) {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}
