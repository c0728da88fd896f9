package ocr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// TesseractService implements Service by invoking the tesseract binary.
// Language availability is read from tesseract's own inventory of installed
// .traineddata files.
type TesseractService struct {
	binary string
}

// NewTesseractService creates a tesseract-backed OCR service. binary may be
// empty to use "tesseract" from PATH. Returns ErrEngineUnavailable when the
// binary cannot be found.
func NewTesseractService(binary string) (*TesseractService, error) {
	const op = "NewTesseractService"

	if binary == "" {
		binary = "tesseract"
	}
	path, err := exec.LookPath(binary)
	if err != nil {
		return nil, WrapOCRError(op, ErrEngineUnavailable, fmt.Sprintf("%q not found in PATH", binary))
	}
	return &TesseractService{binary: path}, nil
}

// Languages returns the installed tesseract language codes.
func (t *TesseractService) Languages(ctx context.Context) ([]string, error) {
	const op = "Languages"

	out, err := exec.CommandContext(ctx, t.binary, "--list-langs").Output()
	if err != nil {
		return nil, WrapOCRError(op, ErrEngineUnavailable, commandDetails(err))
	}

	// First line is the "List of available languages" header.
	var langs []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "List of") {
			continue
		}
		langs = append(langs, line)
	}
	if len(langs) == 0 {
		return nil, WrapOCRError(op, ErrEngineUnavailable, "no language data installed")
	}
	return langs, nil
}

// ExtractText runs tesseract over the image via stdin/stdout.
func (t *TesseractService) ExtractText(ctx context.Context, image io.Reader, lang string) (string, error) {
	const op = "ExtractText"

	data, err := readImage(image)
	if err != nil {
		return "", WrapOCRError(op, err, "")
	}

	requested := ParseLanguages(lang)
	installed, err := t.Languages(ctx)
	if err != nil {
		// Same degraded inventory the language listing endpoint reports.
		installed = []string{DefaultLanguage}
	}
	if missing := missingLanguages(requested, installed); len(missing) > 0 {
		return "", NewMissingLanguageError(op, missing)
	}

	cmd := exec.CommandContext(ctx, t.binary, "stdin", "stdout", "-l", strings.Join(requested, "+"))
	cmd.Stdin = bytes.NewReader(data)
	out, err := cmd.Output()
	if err != nil {
		return "", WrapOCRError(op, ErrOCRFailed, commandDetails(err))
	}
	return string(out), nil
}

// readImage buffers and validates an uploaded image.
func readImage(image io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(image, MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	if len(data) > MaxImageBytes {
		return nil, ErrImageTooLarge
	}
	return data, nil
}

// commandDetails pulls stderr out of an exec failure for the error message.
func commandDetails(err error) string {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
		return strings.TrimSpace(string(exitErr.Stderr))
	}
	return err.Error()
}
