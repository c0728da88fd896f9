package ocr

import (
	"errors"
	"fmt"
	"strings"
)

// Common OCR processing errors
var (
	// ErrImageTooLarge is returned when an image exceeds MaxImageBytes.
	ErrImageTooLarge = errors.New("file too large (>12MB), please use a smaller image")

	// ErrEngineUnavailable is returned when no OCR engine can be used,
	// e.g. the tesseract binary is not installed.
	ErrEngineUnavailable = errors.New("OCR engine is not available")

	// ErrMissingLanguage is returned when a requested language code has no
	// installed language data.
	ErrMissingLanguage = errors.New("missing language data")

	// ErrOCRFailed is returned when the engine fails to process the image.
	ErrOCRFailed = errors.New("OCR processing failed")

	// ErrEmptyImage is returned when the uploaded image contains no bytes.
	ErrEmptyImage = errors.New("image is empty")

	// ErrMissingCredentials is returned by the Vision engine when neither
	// GOOGLE_APPLICATION_CREDENTIALS nor GOOGLE_CREDENTIALS is configured.
	ErrMissingCredentials = errors.New("missing Google Cloud credentials: set GOOGLE_APPLICATION_CREDENTIALS or GOOGLE_CREDENTIALS environment variable")
)

// OCRError wraps errors with additional context about the OCR failure.
type OCRError struct {
	// Op is the operation that failed (e.g. "ExtractText", "Languages").
	Op string

	// Err is the underlying error.
	Err error

	// Details provides additional context about the failure.
	Details string
}

// Error implements the error interface.
func (e *OCRError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("ocr: %s failed: %s: %v", e.Op, e.Details, e.Err)
	}
	return fmt.Sprintf("ocr: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *OCRError) Unwrap() error {
	return e.Err
}

// Is implements error matching for errors.Is.
func (e *OCRError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// WrapOCRError wraps an error as an OCRError if it isn't already one.
func WrapOCRError(op string, err error, details string) error {
	if err == nil {
		return nil
	}

	var ocrErr *OCRError
	if errors.As(err, &ocrErr) {
		return err // Already wrapped
	}

	return &OCRError{Op: op, Err: err, Details: details}
}

// NewMissingLanguageError builds the user-facing error for absent language
// packs, enumerating every missing code.
func NewMissingLanguageError(op string, missing []string) error {
	return WrapOCRError(op, ErrMissingLanguage,
		fmt.Sprintf("install language data for: %s", strings.Join(missing, ", ")))
}
