package server

import "net/http"

func RegisterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /{$}", handler.HandleIndex)
	mux.HandleFunc("GET /health", handler.HandleHealth)
	mux.HandleFunc("POST /summarize", handler.HandleSummarize)
	mux.HandleFunc("POST /flashcards", handler.HandleFlashcards)
	mux.HandleFunc("GET /ocr/langs", handler.HandleLanguages)
	mux.HandleFunc("POST /ocr", handler.HandleOCR)
}
