package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"studysnap/internal/config"
	"studysnap/internal/logger"
	"studysnap/internal/ocr"
	"studysnap/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the StudySnap HTTP server",
	Long: `Start the HTTP server that backs the StudySnap page.

Endpoints:
  GET  /            interactive page
  POST /summarize   extractive summary of posted text
  POST /flashcards  question/answer cards from posted text
  GET  /ocr/langs   installed OCR language codes
  POST /ocr         OCR an uploaded image
  GET  /health      liveness probe

The OCR engine is selected with OCR_ENGINE (tesseract or vision). When no
engine is usable the server still starts; OCR requests then report an error
and the language list falls back to eng.`,
	Example: `  # Serve on the default port (8000 or $PORT)
  studysnap serve

  # Serve on an explicit port
  studysnap serve --port 9000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (overrides PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("serve")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.Port = port
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ocrService, err := createOCRService(ctx, cfg)
	if err != nil {
		// Degrade rather than refuse to start; the text endpoints do not
		// depend on OCR.
		log.Warn().Err(err).Str("engine", cfg.OCREngine).Msg("OCR engine unavailable, serving without OCR")
		ocrService = nil
	}

	log.Info().
		Str("port", cfg.Port).
		Str("ocr_engine", cfg.OCREngine).
		Bool("ocr_enabled", ocrService != nil).
		Msg("Starting StudySnap server")

	return server.New(cfg.Port, ocrService).Run(ctx)
}

// createOCRService builds the configured OCR engine.
func createOCRService(ctx context.Context, cfg *config.Config) (ocr.Service, error) {
	switch cfg.OCREngine {
	case config.EngineVision:
		return ocr.NewGoogleVisionService(ctx, cfg.VisionLanguages)
	default:
		return ocr.NewTesseractService(cfg.TesseractPath)
	}
}
