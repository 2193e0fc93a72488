package handler

import (
	"io"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/auditsafe/audit-insights/internal/api/metrics"
	"github.com/auditsafe/audit-insights/internal/core/ports"
)

// UploadHandler receives a PDF, extracts its text, and returns it. The
// uploaded bytes live in a temp file only for the duration of the request;
// the server keeps nothing.
type UploadHandler struct {
	extractor ports.TextExtractor
	dir       string
	logger    zerolog.Logger
}

func NewUploadHandler(extractor ports.TextExtractor, dir string, logger zerolog.Logger) *UploadHandler {
	return &UploadHandler{extractor: extractor, dir: dir, logger: logger}
}

// Upload handles POST /api/uploadPDF (multipart, file field "pdf").
//
// @Summary      Extract text from an uploaded PDF
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        pdf  formData  file  true  "PDF audit report"
// @Success      200  {object}  uploadResponse
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/uploadPDF [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("pdf")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing pdf file"})
	}

	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to process PDF"})
	}
	defer src.Close()

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		h.logger.Error().Err(err).Str("dir", h.dir).Msg("cannot create upload dir")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to process PDF"})
	}

	tmp, err := os.CreateTemp(h.dir, "upload-*.pdf")
	if err != nil {
		h.logger.Error().Err(err).Msg("cannot create temp file")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to process PDF"})
	}
	// Remove the temp file on every path, success or failure.
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to process PDF"})
	}
	if err := tmp.Close(); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to process PDF"})
	}

	text, err := h.extractor.ExtractText(tmp.Name())
	if err != nil {
		metrics.ExtractionErrorsTotal.Inc()
		h.logger.Error().Err(err).Str("filename", fh.Filename).Msg("text extraction failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to process PDF"})
	}

	metrics.ExtractionsTotal.Inc()
	h.logger.Info().Str("filename", fh.Filename).Int64("size", fh.Size).Msg("pdf extracted")
	return c.JSON(http.StatusOK, uploadResponse{Text: text})
}
