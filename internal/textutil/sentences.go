// Package textutil provides the shared text primitives used by the
// summarizer and the flashcard generator: sentence splitting and word
// normalization against a fixed English stopword set.
package textutil

import (
	"strings"
	"unicode"
)

// Sentences splits text into trimmed, non-empty sentences. A split point is
// any '.', '!' or '?' immediately followed by whitespace; terminal
// punctuation with nothing after it stays attached to the last sentence.
// Text without terminal punctuation yields a single sentence. The result is
// deterministic and locale-independent.
func Sentences(text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	var sentences []string
	runes := []rune(trimmed)
	start := 0
	for i := 0; i < len(runes); i++ {
		if !isTerminal(runes[i]) {
			continue
		}
		// Only split when whitespace follows the terminal run.
		j := i + 1
		for j < len(runes) && isTerminal(runes[j]) {
			j++
		}
		if j >= len(runes) || !unicode.IsSpace(runes[j]) {
			i = j - 1
			continue
		}
		if s := strings.TrimSpace(string(runes[start:j])); s != "" {
			sentences = append(sentences, s)
		}
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		start = j
		i = j - 1
	}
	if start < len(runes) {
		if s := strings.TrimSpace(string(runes[start:])); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
