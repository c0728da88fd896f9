// Package ocr provides OCR (Optical Character Recognition) capabilities for
// study-note images.
//
// Two engines implement the Service interface:
//   - Tesseract: shells out to the locally installed tesseract binary, using
//     its installed .traineddata language packs.
//   - Google Vision: uses the Cloud Vision API's text detection with
//     language hints.
//
// Both engines enforce the 12MB upload limit and validate that every
// requested language code is available before processing.
package ocr

import (
	"context"
	"io"
	"strings"
)

// MaxImageBytes is the maximum accepted image size (12MB).
const MaxImageBytes = 12 * 1024 * 1024

// DefaultLanguage is assumed when the caller does not request any language.
const DefaultLanguage = "eng"

// Service defines the interface for OCR text extraction engines.
type Service interface {
	// Languages returns the language codes the engine can recognize.
	Languages(ctx context.Context) ([]string, error)

	// ExtractText extracts text from an image. lang is one or more
	// language codes joined with "+" (e.g. "eng+guj"); empty means eng.
	ExtractText(ctx context.Context, image io.Reader, lang string) (string, error)
}

// ParseLanguages splits a "+"-joined language string into trimmed,
// non-empty codes, defaulting to eng when nothing usable remains.
func ParseLanguages(lang string) []string {
	var codes []string
	for _, code := range strings.Split(lang, "+") {
		if code = strings.TrimSpace(code); code != "" {
			codes = append(codes, code)
		}
	}
	if len(codes) == 0 {
		codes = []string{DefaultLanguage}
	}
	return codes
}

// missingLanguages returns the requested codes absent from installed.
func missingLanguages(requested, installed []string) []string {
	have := make(map[string]struct{}, len(installed))
	for _, code := range installed {
		have[code] = struct{}{}
	}
	var missing []string
	for _, code := range requested {
		if _, ok := have[code]; !ok {
			missing = append(missing, code)
		}
	}
	return missing
}
