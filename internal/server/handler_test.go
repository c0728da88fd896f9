package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"studysnap/internal/flashcard"
	"studysnap/internal/ocr"
)

// fakeOCR is a stub engine for handler tests.
type fakeOCR struct {
	langs []string
	text  string
	err   error
}

func (f *fakeOCR) Languages(ctx context.Context) ([]string, error) {
	return f.langs, nil
}

func (f *fakeOCR) ExtractText(ctx context.Context, image io.Reader, lang string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func newTestMux(ocrService ocr.Service) *http.ServeMux {
	mux := http.NewServeMux()
	RegisterRoutes(mux, NewHandler(ocrService))
	return mux
}

func postJSON(t *testing.T, mux *http.ServeMux, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHandleSummarize(t *testing.T) {
	mux := newTestMux(nil)

	rec := postJSON(t, mux, "/summarize",
		`{"text": "AI is useful. AI helps students. AI raises questions. AI requires regulation.", "max_sentences": 2}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp SummarizeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Summary == "" {
		t.Error("expected a non-empty summary")
	}
	if n := strings.Count(resp.Summary, "."); n != 2 {
		t.Errorf("expected 2 sentences, got %d: %q", n, resp.Summary)
	}
}

func TestHandleSummarize_MaxSentencesCoercion(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int // expected sentence count in the summary
	}{
		{"missing field defaults to 3", `{"text": "A one. B two. C three. D four. E five."}`, 3},
		{"numeric string accepted", `{"text": "A one. B two. C three. D four. E five.", "max_sentences": "2"}`, 2},
		{"float truncated", `{"text": "A one. B two. C three. D four. E five.", "max_sentences": 2.9}`, 2},
		{"garbage defaults to 3", `{"text": "A one. B two. C three. D four. E five.", "max_sentences": "lots"}`, 3},
		{"null defaults to 3", `{"text": "A one. B two. C three. D four. E five.", "max_sentences": null}`, 3},
	}

	mux := newTestMux(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, mux, "/summarize", tt.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			var resp SummarizeResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid JSON response: %v", err)
			}
			if n := strings.Count(resp.Summary, "."); n != tt.want {
				t.Errorf("summary %q has %d sentences, want %d", resp.Summary, n, tt.want)
			}
		})
	}
}

func TestHandleSummarize_EmptyText(t *testing.T) {
	mux := newTestMux(nil)
	rec := postJSON(t, mux, "/summarize", `{}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp SummarizeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Summary != "" {
		t.Errorf("expected empty summary, got %q", resp.Summary)
	}
}

func TestHandleFlashcards_BareArray(t *testing.T) {
	mux := newTestMux(nil)
	rec := postJSON(t, mux, "/flashcards", `{"text": "Paris is the capital of France. The cell has a nucleus."}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var cards []flashcard.Card
	if err := json.Unmarshal(rec.Body.Bytes(), &cards); err != nil {
		t.Fatalf("response is not a bare JSON array: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	if cards[0].Question != "What is Paris?" || cards[0].Answer != "the capital of France" {
		t.Errorf("unexpected first card: %+v", cards[0])
	}
}

func TestHandleFlashcards_EmptyTextYieldsEmptyArray(t *testing.T) {
	mux := newTestMux(nil)
	rec := postJSON(t, mux, "/flashcards", `{"text": ""}`)
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected [], got %q", body)
	}
}

func TestHandleFlashcards_CapAtTen(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(`{"text": "`)
	for i := 0; i < 15; i++ {
		sb.WriteString("Water is wet. ")
	}
	sb.WriteString(`"}`)

	mux := newTestMux(nil)
	rec := postJSON(t, mux, "/flashcards", sb.String())

	var cards []flashcard.Card
	if err := json.Unmarshal(rec.Body.Bytes(), &cards); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(cards) != 10 {
		t.Errorf("expected 10 cards, got %d", len(cards))
	}
}

func TestHandleLanguages(t *testing.T) {
	t.Run("engine inventory", func(t *testing.T) {
		mux := newTestMux(&fakeOCR{langs: []string{"eng", "guj", "hin"}})
		req := httptest.NewRequest(http.MethodGet, "/ocr/langs", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		var resp LanguagesResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if len(resp.Languages) != 3 || resp.Languages[1] != "guj" {
			t.Errorf("unexpected languages: %v", resp.Languages)
		}
	})

	t.Run("no engine falls back to eng", func(t *testing.T) {
		mux := newTestMux(nil)
		req := httptest.NewRequest(http.MethodGet, "/ocr/langs", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		var resp LanguagesResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if len(resp.Languages) != 1 || resp.Languages[0] != "eng" {
			t.Errorf("expected [eng], got %v", resp.Languages)
		}
	})
}

func postImage(t *testing.T, mux *http.ServeMux, lang string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "notes.png")
	if err != nil {
		t.Fatal(err)
	}
	fw.Write([]byte("fake image bytes"))
	if lang != "" {
		mw.WriteField("lang", lang)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/ocr", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHandleOCR_Success(t *testing.T) {
	mux := newTestMux(&fakeOCR{langs: []string{"eng"}, text: "recognized text"})
	rec := postImage(t, mux, "eng")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp OCRResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Text != "recognized text" || resp.Lang != "eng" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestHandleOCR_DefaultLanguage(t *testing.T) {
	mux := newTestMux(&fakeOCR{text: "ok"})
	rec := postImage(t, mux, "")

	var resp OCRResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Lang != "eng" {
		t.Errorf("lang = %q, want eng", resp.Lang)
	}
}

func TestHandleOCR_EngineErrorReportedAt200(t *testing.T) {
	mux := newTestMux(&fakeOCR{err: ocr.NewMissingLanguageError("ExtractText", []string{"guj", "hin"})})
	rec := postImage(t, mux, "eng+guj+hin")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 even on OCR failure", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	msg, ok := resp["error"]
	if !ok {
		t.Fatalf("expected error field, got %v", resp)
	}
	if !strings.Contains(msg, "guj") || !strings.Contains(msg, "hin") {
		t.Errorf("error message should enumerate missing codes, got %q", msg)
	}
}

func TestHandleOCR_NoEngine(t *testing.T) {
	mux := newTestMux(nil)
	rec := postImage(t, mux, "eng")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp["error"] == "" {
		t.Error("expected an error message when no engine is configured")
	}
}

func TestHandleOCR_MissingFile(t *testing.T) {
	mux := newTestMux(&fakeOCR{})
	req := httptest.NewRequest(http.MethodPost, "/ocr", strings.NewReader("not multipart"))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
