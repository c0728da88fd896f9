// Package flashcard turns free text into question/answer study cards using a
// small cascade of syntactic pattern rules, one card per sentence.
package flashcard

import (
	"fmt"
	"regexp"
	"strings"

	"studysnap/internal/textutil"
)

// DefaultMaxCards is used when the caller passes a non-positive cap.
const DefaultMaxCards = 10

// Card is a question/answer pair derived from exactly one sentence.
type Card struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var (
	// Non-greedy subject: the earliest whole-word copula splits the sentence.
	copulaPattern     = regexp.MustCompile(`(?i)^(.*?)\s+(is|are|was|were)\s+(.*)`)
	possessionPattern = regexp.MustCompile(`(?i)^(.*?)\s+has\s+(.*)`)
)

// longSentenceWords is the word-count threshold above which the long-sentence
// fallback applies.
const longSentenceWords = 6

// shortQuestionRunes caps how much of a short sentence is quoted in its
// fallback question.
const shortQuestionRunes = 40

// Generate splits text into sentences and emits one card per sentence, in
// order, stopping once maxCards have been produced. Rules apply first-match-
// wins: copula ("X is Y"), possession ("X has Y"), long-sentence fallback,
// short-sentence fallback. Pure and total over any string input.
func Generate(text string, maxCards int) []Card {
	if maxCards <= 0 {
		maxCards = DefaultMaxCards
	}

	var cards []Card
	for _, sentence := range textutil.Sentences(text) {
		cards = append(cards, fromSentence(sentence))
		if len(cards) >= maxCards {
			break
		}
	}
	return cards
}

func fromSentence(sentence string) Card {
	s := strings.TrimSpace(sentence)

	if m := copulaPattern.FindStringSubmatch(s); m != nil {
		return Card{
			Question: fmt.Sprintf("What is %s?", strings.TrimSpace(m[1])),
			Answer:   trimTerminal(strings.TrimSpace(m[3])),
		}
	}

	if m := possessionPattern.FindStringSubmatch(s); m != nil {
		return Card{
			Question: fmt.Sprintf("What does %s have?", strings.TrimSpace(m[1])),
			Answer:   trimTerminal(strings.TrimSpace(m[2])),
		}
	}

	words := strings.Fields(s)
	if len(words) > longSentenceWords {
		return Card{
			Question: fmt.Sprintf("What does this say about: %s…", strings.Join(words[:longSentenceWords], " ")),
			Answer:   s,
		}
	}

	return Card{
		Question: fmt.Sprintf("Question: %s...", truncateRunes(s, shortQuestionRunes)),
		Answer:   s,
	}
}

// trimTerminal strips trailing sentence punctuation from an answer.
func trimTerminal(s string) string {
	return strings.TrimRight(s, ".!?")
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
