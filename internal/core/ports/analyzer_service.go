package ports

import (
	"context"

	"github.com/auditsafe/audit-insights/internal/core/domain"
)

// AnalyzerService runs extracted report text through the generative model and
// returns one typed artifact per pipeline. Every method is a single
// synchronous model call; no retries.
type AnalyzerService interface {
	Summarize(ctx context.Context, report string) (*domain.ReportSummary, error)
	Analyze(ctx context.Context, report string) (*domain.ReportAnalysis, error)
	Suggest(ctx context.Context, report string) ([]domain.Suggestion, error)
	Insights(ctx context.Context, report string) (*domain.ReportInsights, error)
	Visualize(ctx context.Context, report string) (*domain.Visualization, error)
}
