package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) ExtractText(path string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return s.text, nil
}

func newUploadRequest(t *testing.T, field string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, "report.pdf")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte("%PDF-1.4 fake body")); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/uploadPDF", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func TestUploadHandler_MissingFile(t *testing.T) {
	e := echo.New()
	h := NewUploadHandler(&stubExtractor{}, t.TempDir(), zerolog.Nop())

	req := newUploadRequest(t, "document")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Upload(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "missing pdf file") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUploadHandler_Success(t *testing.T) {
	e := echo.New()
	dir := t.TempDir()
	h := NewUploadHandler(&stubExtractor{text: "extracted report text"}, dir, zerolog.Nop())

	req := newUploadRequest(t, "pdf")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Upload(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp uploadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Text != "extracted report text" {
		t.Fatalf("unexpected text: %q", resp.Text)
	}

	assertDirEmpty(t, dir)
}

func TestUploadHandler_ExtractionFailure(t *testing.T) {
	e := echo.New()
	dir := t.TempDir()
	h := NewUploadHandler(&stubExtractor{err: errors.New("not a pdf")}, dir, zerolog.Nop())

	req := newUploadRequest(t, "pdf")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Upload(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "failed to process PDF") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	assertDirEmpty(t, dir)
}

// assertDirEmpty verifies the temp upload was removed after the request.
func assertDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("upload dir not cleaned up, %d entries remain", len(entries))
	}
}
