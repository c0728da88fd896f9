package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"studysnap/internal/config"
	"studysnap/internal/logger"
	"studysnap/internal/ocr"
)

var ocrCmd = &cobra.Command{
	Use:   "ocr [image-file]",
	Short: "Extract text from an image",
	Long: `Extract text from a note photo or scan.

The engine is selected with OCR_ENGINE: tesseract (default) uses the local
tesseract binary and its installed .traineddata language packs; vision uses
the Google Cloud Vision API and needs GOOGLE_APPLICATION_CREDENTIALS or
GOOGLE_CREDENTIALS. Images are limited to 12MB.`,
	Example: `  # Extract English text to stdout
  studysnap ocr page.png

  # Multiple languages, saved to a file
  studysnap ocr page.png --lang eng+guj -o extracted.txt

  # JSON output with a custom timeout
  studysnap ocr page.png --json --timeout 120`,
	Args: cobra.ExactArgs(1),
	RunE: runOCR,
}

// ocrOutput is the JSON structure emitted with --json.
type ocrOutput struct {
	Text     string `json:"text"`
	Lang     string `json:"lang"`
	FileName string `json:"file_name"`
	FileSize int64  `json:"file_size"`
}

func init() {
	rootCmd.AddCommand(ocrCmd)

	ocrCmd.Flags().StringP("lang", "l", ocr.DefaultLanguage, "Language codes, joined with + (e.g. eng+guj)")
	ocrCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	ocrCmd.Flags().Bool("json", false, "Output as JSON")
	ocrCmd.Flags().Int("timeout", 300, "Processing timeout in seconds")
}

func runOCR(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("ocr")

	lang, _ := cmd.Flags().GetString("lang")
	outputPath, _ := cmd.Flags().GetString("output")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	timeoutSecs, _ := cmd.Flags().GetInt("timeout")

	imagePath := args[0]

	log.Info().
		Str("file", imagePath).
		Str("lang", lang).
		Str("output", outputPath).
		Int("timeout", timeoutSecs).
		Msg("Starting OCR processing")

	fileInfo, err := validateImageFile(imagePath, log)
	if err != nil {
		return err
	}

	ctx, cancel := createContextWithTimeout(timeoutSecs, log)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	ocrService, err := createOCRService(ctx, cfg)
	if err != nil {
		return handleOCRError(err, log)
	}

	imageFile, err := os.Open(imagePath)
	if err != nil {
		log.Error().Err(err).Str("file", imagePath).Msg("Failed to open image file")
		return fmt.Errorf("failed to open image file: %w", err)
	}
	defer func() {
		if closeErr := imageFile.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("Failed to close image file")
		}
	}()

	startTime := time.Now()
	text, err := ocrService.ExtractText(ctx, imageFile, lang)
	if err != nil {
		return handleOCRError(err, log)
	}

	log.Info().
		Int("text_length", len(text)).
		Dur("duration", time.Since(startTime)).
		Msg("OCR processing completed successfully")

	var outputData []byte
	if jsonOutput {
		outputData, err = json.MarshalIndent(ocrOutput{
			Text:     text,
			Lang:     lang,
			FileName: filepath.Base(fileInfo.Name()),
			FileSize: fileInfo.Size(),
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to create JSON output: %w", err)
		}
	} else {
		outputData = []byte(text)
	}

	return writeOutput(outputData, outputPath, !jsonOutput, log)
}

// validateImageFile checks that the path is a readable, non-empty regular
// file within the size limit.
func validateImageFile(imagePath string, log zerolog.Logger) (os.FileInfo, error) {
	fileInfo, err := os.Stat(imagePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Error().Str("file", imagePath).Msg("Image file not found")
			return nil, fmt.Errorf("image file not found: %s", imagePath)
		}
		if os.IsPermission(err) {
			log.Error().Str("file", imagePath).Msg("Permission denied accessing image file")
			return nil, fmt.Errorf("permission denied accessing image file: %s", imagePath)
		}
		return nil, fmt.Errorf("error accessing image file: %w", err)
	}

	if !fileInfo.Mode().IsRegular() {
		log.Error().Str("file", imagePath).Msg("Path is not a regular file")
		return nil, fmt.Errorf("path is not a regular file: %s", imagePath)
	}

	if fileInfo.Size() == 0 {
		log.Error().Str("file", imagePath).Msg("Image file is empty")
		return nil, fmt.Errorf("image file is empty: %s", imagePath)
	}

	if fileInfo.Size() > ocr.MaxImageBytes {
		log.Error().
			Str("file", imagePath).
			Int64("size", fileInfo.Size()).
			Int64("max_size", ocr.MaxImageBytes).
			Msg("Image file exceeds maximum size limit")
		return nil, fmt.Errorf("image file too large (%d bytes), maximum size is %d bytes (12MB)",
			fileInfo.Size(), int64(ocr.MaxImageBytes))
	}

	return fileInfo, nil
}

// createContextWithTimeout creates a context with timeout and signal handling
func createContextWithTimeout(timeoutSecs int, log zerolog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSecs)*time.Second)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			log.Info().
				Str("signal", sig.String()).
				Msg("Received interrupt signal, canceling OCR processing")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

// handleOCRError provides user-friendly error messages for OCR failures
func handleOCRError(err error, log zerolog.Logger) error {
	log.Error().Err(err).Msg("OCR processing failed")

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("OCR processing timed out. Try increasing --timeout or processing a smaller image")
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("OCR processing was canceled")
	case errors.Is(err, ocr.ErrImageTooLarge):
		return fmt.Errorf("image is too large (maximum 12MB). Try scaling it down")
	case errors.Is(err, ocr.ErrEmptyImage):
		return fmt.Errorf("image contains no data")
	case errors.Is(err, ocr.ErrMissingLanguage):
		return fmt.Errorf("%w. Install the missing .traineddata files or adjust --lang", err)
	case errors.Is(err, ocr.ErrEngineUnavailable):
		return fmt.Errorf("no OCR engine available. Install tesseract or set OCR_ENGINE=vision with Google Cloud credentials")
	case errors.Is(err, ocr.ErrMissingCredentials):
		return fmt.Errorf("Google Cloud credentials not configured. Set GOOGLE_APPLICATION_CREDENTIALS or GOOGLE_CREDENTIALS")
	default:
		return fmt.Errorf("OCR processing failed: %w", err)
	}
}
