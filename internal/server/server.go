// Package server wires the study-material API: summarization, flashcard
// generation and OCR behind a small JSON surface plus the embedded page.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"studysnap/internal/logger"
	"studysnap/internal/ocr"
)

const shutdownTimeout = 10 * time.Second

// Server owns the HTTP listener and its graceful shutdown.
type Server struct {
	httpServer *http.Server
	log        zerolog.Logger
}

// New builds the server on the given port. ocrService may be nil.
func New(port string, ocrService ocr.Service) *Server {
	handler := NewHandler(ocrService)

	mux := http.NewServeMux()
	RegisterRoutes(mux, handler)

	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + port,
			Handler:           WithRequestID(WithAccessLog(mux)),
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: logger.WithComponent("server"),
	}
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.httpServer.Addr).Msg("HTTP server listening")
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info().Msg("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}
