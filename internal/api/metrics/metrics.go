// Package metrics defines all custom Prometheus metrics for the audit
// insights API. It is the single source of truth for metric names, labels,
// and help strings; metrics register themselves with the default registry at
// package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "auditsafe"

// ── Analyzer metrics ──────────────────────────────────────────────────────────

// AnalysesTotal counts analyzer pipeline runs that produced a valid artifact.
// Label:
//   - kind: "summary", "analysis", "suggestions", "insights", "visualization"
var AnalysesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analyses_total",
		Help:      "Total number of analyzer runs that returned a valid artifact.",
	},
	[]string{"kind"},
)

// AnalysisErrorsTotal counts analyzer runs that failed.
// Labels:
//   - kind: pipeline kind
//   - reason: "upstream_error", "parse_error", or "contract_violation"
var AnalysisErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analysis_errors_total",
		Help:      "Total number of analyzer runs that failed, by reason.",
	},
	[]string{"kind", "reason"},
)

// AnalysisCacheTotal counts result-cache lookups.
// Label:
//   - result: "hit" or "miss"
var AnalysisCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analysis_cache_total",
		Help:      "Total number of analysis result cache lookups, by result.",
	},
	[]string{"result"},
)

// ModelLatency measures the duration of a single generative-model call.
// Label:
//   - kind: pipeline kind
var ModelLatency = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "model_call_duration_seconds",
		Help:      "Duration of calls to the external generative model.",
		Buckets:   []float64{.25, .5, 1, 2.5, 5, 10, 20, 30, 60},
	},
	[]string{"kind"},
)

// ── Extractor metrics ─────────────────────────────────────────────────────────

// ExtractionsTotal counts successful PDF text extractions.
var ExtractionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "extractions_total",
		Help:      "Total number of successful PDF text extractions.",
	},
)

// ExtractionErrorsTotal counts uploads the extractor could not process.
var ExtractionErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "extraction_errors_total",
		Help:      "Total number of uploads that failed text extraction.",
	},
)
