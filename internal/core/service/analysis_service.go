package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/auditsafe/audit-insights/internal/api/metrics"
	"github.com/auditsafe/audit-insights/internal/core/domain"
	"github.com/auditsafe/audit-insights/internal/core/ports"
)

// AnalysisService is the report-ingestion-and-AI-analysis pipeline: interpolate
// the report into a fixed prompt, send it to the model, strip code fences from
// the reply, parse it strictly, and check it against the promised shape.
// Identical reports replay the cached artifact instead of re-calling the model.
type AnalysisService struct {
	model ports.TextGenerator
	cache ports.ResultCache // optional; nil disables caching
	log   zerolog.Logger
}

func NewAnalysisService(model ports.TextGenerator, cache ports.ResultCache, log zerolog.Logger) *AnalysisService {
	return &AnalysisService{model: model, cache: cache, log: log}
}

func (s *AnalysisService) Summarize(ctx context.Context, report string) (*domain.ReportSummary, error) {
	var out domain.ReportSummary
	if err := s.run(ctx, domain.KindSummary, summaryPrompt, report, &out, out.Validate); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AnalysisService) Analyze(ctx context.Context, report string) (*domain.ReportAnalysis, error) {
	var out domain.ReportAnalysis
	if err := s.run(ctx, domain.KindAnalysis, analysisPrompt, report, &out, out.Validate); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AnalysisService) Suggest(ctx context.Context, report string) ([]domain.Suggestion, error) {
	var out []domain.Suggestion
	if err := s.run(ctx, domain.KindSuggestions, suggestionsPrompt, report, &out, func() error {
		return domain.ValidateSuggestions(out)
	}); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *AnalysisService) Insights(ctx context.Context, report string) (*domain.ReportInsights, error) {
	var out domain.ReportInsights
	if err := s.run(ctx, domain.KindInsights, insightsPrompt, report, &out, out.Validate); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AnalysisService) Visualize(ctx context.Context, report string) (*domain.Visualization, error) {
	var out domain.Visualization
	if err := s.run(ctx, domain.KindVisualization, visualizationPrompt, report, &out, out.Validate); err != nil {
		return nil, err
	}
	return &out, nil
}

// run executes one pipeline pass into out, which must be a pointer. validate
// is called after a successful decode; only on its success is the artifact
// cached.
func (s *AnalysisService) run(ctx context.Context, kind domain.AnalysisKind, template, report string, out any, validate func() error) error {
	if report == "" {
		return domain.ErrEmptyReport
	}

	digest := reportDigest(report)
	if cached := s.cacheGet(ctx, kind, digest); cached != nil {
		if err := json.Unmarshal(cached, out); err == nil {
			metrics.AnalysisCacheTotal.WithLabelValues("hit").Inc()
			return nil
		}
		// A cached artifact that no longer decodes is stale schema; fall
		// through to a fresh model call.
	}
	metrics.AnalysisCacheTotal.WithLabelValues("miss").Inc()

	start := time.Now()
	reply, err := s.model.Generate(ctx, buildPrompt(template, report))
	if err != nil {
		metrics.AnalysisErrorsTotal.WithLabelValues(string(kind), "upstream_error").Inc()
		s.log.Error().Err(err).Str("kind", string(kind)).Msg("model call failed")
		return err
	}
	metrics.ModelLatency.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())

	cleaned := stripCodeFences(reply)
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		metrics.AnalysisErrorsTotal.WithLabelValues(string(kind), "parse_error").Inc()
		s.log.Error().Err(err).Str("kind", string(kind)).Msg("model reply is not valid JSON")
		return &domain.ModelParseError{Raw: cleaned, Err: err}
	}

	if err := validate(); err != nil {
		metrics.AnalysisErrorsTotal.WithLabelValues(string(kind), "contract_violation").Inc()
		s.log.Error().Err(err).Str("kind", string(kind)).Msg("model reply violated expected shape")
		return err
	}

	metrics.AnalysesTotal.WithLabelValues(string(kind)).Inc()
	s.cacheSet(ctx, kind, digest, cleaned)
	return nil
}

func (s *AnalysisService) cacheGet(ctx context.Context, kind domain.AnalysisKind, digest string) []byte {
	if s.cache == nil {
		return nil
	}
	payload, err := s.cache.Get(ctx, string(kind), digest)
	if err != nil {
		s.log.Warn().Err(err).Str("kind", string(kind)).Msg("result cache read failed, calling model")
		return nil
	}
	return payload
}

func (s *AnalysisService) cacheSet(ctx context.Context, kind domain.AnalysisKind, digest, cleaned string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, string(kind), digest, []byte(cleaned)); err != nil {
		s.log.Warn().Err(err).Str("kind", string(kind)).Msg("result cache write failed")
	}
}

func reportDigest(report string) string {
	sum := sha256.Sum256([]byte(report))
	return hex.EncodeToString(sum[:])
}

// stripCodeFences removes a leading triple-backtick marker (with optional
// "json" tag) and a trailing one, then trims surrounding whitespace. The model
// frequently wraps its JSON reply in a markdown code block despite being told
// not to.
func stripCodeFences(reply string) string {
	cleaned := strings.TrimSpace(reply)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	return strings.TrimSpace(cleaned)
}
