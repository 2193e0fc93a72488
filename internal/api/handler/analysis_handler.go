package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/auditsafe/audit-insights/internal/core/domain"
	"github.com/auditsafe/audit-insights/internal/core/ports"
)

// AnalysisHandler serves the analyzer endpoints. All five share one
// pipeline; only the prompt template and artifact shape differ.
type AnalysisHandler struct {
	service ports.AnalyzerService
}

func NewAnalysisHandler(service ports.AnalyzerService) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

// Summarize handles POST /api/summarize-audit-report.
//
// @Summary      Summarize an audit report
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        body  body      auditReportRequest  true  "Extracted report text"
// @Success      200   {object}  domain.ReportSummary
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  parseFailureResponse
// @Router       /api/summarize-audit-report [post]
func (h *AnalysisHandler) Summarize(c echo.Context) error {
	report, err := bindReport(c)
	if err != nil {
		return err
	}
	out, err := h.service.Summarize(c.Request().Context(), report)
	if err != nil {
		return analysisError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Analyze handles POST /api/get-analysis and its /api/generate-analysis alias.
//
// @Summary      Analyze an audit report
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        body  body      auditReportRequest  true  "Extracted report text"
// @Success      200   {object}  domain.ReportAnalysis
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  parseFailureResponse
// @Router       /api/get-analysis [post]
func (h *AnalysisHandler) Analyze(c echo.Context) error {
	report, err := bindReport(c)
	if err != nil {
		return err
	}
	out, err := h.service.Analyze(c.Request().Context(), report)
	if err != nil {
		return analysisError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Suggest handles POST /api/get-suggestion.
//
// @Summary      Generate improvement suggestions
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        body  body      auditReportRequest  true  "Extracted report text"
// @Success      200   {array}   domain.Suggestion
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  parseFailureResponse
// @Router       /api/get-suggestion [post]
func (h *AnalysisHandler) Suggest(c echo.Context) error {
	report, err := bindReport(c)
	if err != nil {
		return err
	}
	out, err := h.service.Suggest(c.Request().Context(), report)
	if err != nil {
		return analysisError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Insights handles POST /api/get-insights.
//
// @Summary      Generate dashboard insights
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        body  body      auditReportRequest  true  "Extracted report text"
// @Success      200   {object}  domain.ReportInsights
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  parseFailureResponse
// @Router       /api/get-insights [post]
func (h *AnalysisHandler) Insights(c echo.Context) error {
	report, err := bindReport(c)
	if err != nil {
		return err
	}
	out, err := h.service.Insights(c.Request().Context(), report)
	if err != nil {
		return analysisError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Visualize handles POST /api/get-visualization.
//
// @Summary      Generate chart-ready visualization data
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        body  body      auditReportRequest  true  "Extracted report text"
// @Success      200   {object}  domain.Visualization
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  parseFailureResponse
// @Router       /api/get-visualization [post]
func (h *AnalysisHandler) Visualize(c echo.Context) error {
	report, err := bindReport(c)
	if err != nil {
		return err
	}
	out, err := h.service.Visualize(c.Request().Context(), report)
	if err != nil {
		return analysisError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// bindReport decodes the shared analyzer body and rejects a missing,
// non-string, or empty auditReport before any outbound call is made. The
// returned error is an echo.HTTPError rendered by the API error handler.
func bindReport(c echo.Context) (string, error) {
	var req auditReportRequest
	if err := c.Bind(&req); err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Invalid or missing auditReport")
	}
	if req.AuditReport == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Invalid or missing auditReport")
	}
	return req.AuditReport, nil
}

// analysisError maps pipeline failures onto the error taxonomy: parse
// failures carry the cleaned model text, contract violations name the broken
// field, everything else is a generic upstream failure.
func analysisError(c echo.Context, err error) error {
	var parseErr *domain.ModelParseError
	if errors.As(err, &parseErr) {
		return c.JSON(http.StatusInternalServerError, parseFailureResponse{
			Error: "failed to parse model response",
			Raw:   parseErr.Raw,
		})
	}

	var contractErr *domain.ContractError
	if errors.As(err, &contractErr) {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": contractErr.Error()})
	}

	if errors.Is(err, domain.ErrEmptyReport) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid or missing auditReport"})
	}

	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}
