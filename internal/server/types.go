package server

import (
	"encoding/json"
	"strconv"
	"strings"

	"studysnap/internal/summarizer"
)

// SummarizeRequest is the POST /summarize payload. MaxSentences is kept raw
// because clients send it as a number, a numeric string, or not at all;
// anything uninterpretable silently falls back to the default.
type SummarizeRequest struct {
	Text         string          `json:"text"`
	MaxSentences json.RawMessage `json:"max_sentences"`
}

// MaxSentencesValue interprets the raw max_sentences field as an integer,
// truncating floats, or returns the default when it cannot.
func (r *SummarizeRequest) MaxSentencesValue() int {
	if len(r.MaxSentences) == 0 {
		return summarizer.DefaultMaxSentences
	}

	var f float64
	if err := json.Unmarshal(r.MaxSentences, &f); err == nil {
		return int(f)
	}

	var s string
	if err := json.Unmarshal(r.MaxSentences, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n
		}
	}

	return summarizer.DefaultMaxSentences
}

// SummarizeResponse is the POST /summarize result.
type SummarizeResponse struct {
	Summary string `json:"summary"`
}

// FlashcardsRequest is the POST /flashcards payload.
type FlashcardsRequest struct {
	Text string `json:"text"`
}

// LanguagesResponse is the GET /ocr/langs result.
type LanguagesResponse struct {
	Languages []string `json:"languages"`
}

// OCRResponse is the POST /ocr success result.
type OCRResponse struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}
