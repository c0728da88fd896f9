// Package summarizer produces extractive summaries by ranking sentences on
// aggregate token frequency. The output is always a verbatim, order-preserving
// subsequence of the input's sentences; no text is ever synthesized.
package summarizer

import (
	"sort"
	"strings"

	"studysnap/internal/textutil"
)

// DefaultMaxSentences is used when the caller passes a non-positive limit.
const DefaultMaxSentences = 3

// Summarize selects the maxSentences highest-scoring sentences of text and
// rejoins them with single spaces in their original order. A sentence's score
// is the sum of the corpus-wide frequencies of its tokens, counted once per
// occurrence. Short inputs (sentence count <= maxSentences) are returned
// whole without scoring. The function is pure and total: any string input,
// including empty or whitespace-only text, yields a result without error.
func Summarize(text string, maxSentences int) string {
	if maxSentences <= 0 {
		maxSentences = DefaultMaxSentences
	}

	sentences := textutil.Sentences(text)
	if len(sentences) == 0 {
		return ""
	}
	if len(sentences) <= maxSentences {
		return strings.Join(sentences, " ")
	}

	// Tokenize once; the token lists feed both the frequency table and the
	// per-sentence scores.
	tokenized := make([][]string, len(sentences))
	for i, s := range sentences {
		tokenized[i] = textutil.Tokens(s)
	}

	freq := make(map[string]int)
	for _, tokens := range tokenized {
		for _, tok := range tokens {
			freq[tok]++
		}
	}

	scores := make([]int, len(sentences))
	for i, tokens := range tokenized {
		for _, tok := range tokens {
			scores[i] += freq[tok]
		}
	}

	// Rank by score descending with the original index as an explicit
	// secondary key, so ties always resolve to the earlier sentence.
	ranked := make([]int, len(sentences))
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		if scores[ranked[a]] != scores[ranked[b]] {
			return scores[ranked[a]] > scores[ranked[b]]
		}
		return ranked[a] < ranked[b]
	})

	selected := append([]int(nil), ranked[:maxSentences]...)
	sort.Ints(selected)

	picked := make([]string, len(selected))
	for i, idx := range selected {
		picked[i] = sentences[idx]
	}
	return strings.Join(picked, " ")
}
