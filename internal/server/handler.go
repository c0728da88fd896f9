package server

import (
	"net/http"

	"github.com/rs/zerolog"

	"studysnap/internal/flashcard"
	"studysnap/internal/httputil"
	"studysnap/internal/logger"
	"studysnap/internal/ocr"
	"studysnap/internal/summarizer"
	"studysnap/web"
)

// maxCardsPerRequest caps the flashcards returned per HTTP request.
const maxCardsPerRequest = 10

// Handler serves the study-material API. The OCR service may be nil when no
// engine is available; the OCR endpoints then degrade instead of failing.
type Handler struct {
	log zerolog.Logger
	ocr ocr.Service
}

func NewHandler(ocrService ocr.Service) *Handler {
	return &Handler{
		log: logger.WithComponent("server"),
		ocr: ocrService,
	}
}

// HandleIndex serves the embedded single-page UI.
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := web.Files.ReadFile("index.html")
	if err != nil {
		httputil.HandleError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// HandleHealth is a liveness probe.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.JSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleSummarize condenses the posted text into an extractive summary.
func (h *Handler) HandleSummarize(w http.ResponseWriter, r *http.Request) {
	log := h.requestLogger(r)

	var payload SummarizeRequest
	if err := httputil.DecodeJSON(r, &payload); err != nil {
		log.Error().Err(err).Msg("Invalid summarize payload")
		httputil.HandleError(w, err)
		return
	}

	maxSentences := payload.MaxSentencesValue()
	summary := summarizer.Summarize(payload.Text, maxSentences)

	log.Info().
		Int("max_sentences", maxSentences).
		Int("input_length", len(payload.Text)).
		Int("summary_length", len(summary)).
		Msg("Text summarized")

	httputil.JSONResponse(w, http.StatusOK, SummarizeResponse{Summary: summary})
}

// HandleFlashcards turns the posted text into question/answer cards. The
// response body is a bare JSON array.
func (h *Handler) HandleFlashcards(w http.ResponseWriter, r *http.Request) {
	log := h.requestLogger(r)

	var payload FlashcardsRequest
	if err := httputil.DecodeJSON(r, &payload); err != nil {
		log.Error().Err(err).Msg("Invalid flashcards payload")
		httputil.HandleError(w, err)
		return
	}

	cards := flashcard.Generate(payload.Text, maxCardsPerRequest)
	if cards == nil {
		cards = []flashcard.Card{}
	}

	log.Info().
		Int("input_length", len(payload.Text)).
		Int("cards", len(cards)).
		Msg("Flashcards generated")

	httputil.JSONResponse(w, http.StatusOK, cards)
}

// HandleLanguages reports the OCR engine's installed language codes,
// degrading to eng only when the engine is unavailable.
func (h *Handler) HandleLanguages(w http.ResponseWriter, r *http.Request) {
	log := h.requestLogger(r)

	languages := []string{ocr.DefaultLanguage}
	if h.ocr != nil {
		if installed, err := h.ocr.Languages(r.Context()); err == nil {
			languages = installed
		} else {
			log.Warn().Err(err).Msg("Language listing failed, reporting default")
		}
	}

	httputil.JSONResponse(w, http.StatusOK, LanguagesResponse{Languages: languages})
}

// HandleOCR extracts text from an uploaded image. OCR failures are reported
// as {"error": ...} with HTTP 200 so the page can display them inline.
func (h *Handler) HandleOCR(w http.ResponseWriter, r *http.Request) {
	log := h.requestLogger(r)

	if h.ocr == nil {
		log.Warn().Msg("OCR requested but no engine is configured")
		httputil.JSONResponse(w, http.StatusOK, map[string]string{
			"error": ocr.ErrEngineUnavailable.Error(),
		})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Error().Err(err).Msg("Missing or unreadable file field")
		httputil.HandleError(w, &httputil.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "multipart field 'file' is required",
		})
		return
	}
	defer file.Close()

	lang := r.FormValue("lang")
	if lang == "" {
		lang = ocr.DefaultLanguage
	}

	text, err := h.ocr.ExtractText(r.Context(), file, lang)
	if err != nil {
		log.Error().
			Err(err).
			Str("file", header.Filename).
			Str("lang", lang).
			Msg("OCR extraction failed")
		httputil.JSONResponse(w, http.StatusOK, map[string]string{"error": err.Error()})
		return
	}

	log.Info().
		Str("file", header.Filename).
		Str("lang", lang).
		Int("text_length", len(text)).
		Msg("OCR extraction completed")

	httputil.JSONResponse(w, http.StatusOK, OCRResponse{Text: text, Lang: lang})
}

func (h *Handler) requestLogger(r *http.Request) zerolog.Logger {
	return h.log.With().Str("request_id", RequestID(r.Context())).Logger()
}
