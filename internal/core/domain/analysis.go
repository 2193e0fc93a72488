package domain

import (
	"errors"
	"fmt"
	"regexp"
)

// AnalysisKind identifies one of the analyzer pipelines.
type AnalysisKind string

const (
	KindSummary       AnalysisKind = "summary"
	KindAnalysis      AnalysisKind = "analysis"
	KindSuggestions   AnalysisKind = "suggestions"
	KindInsights      AnalysisKind = "insights"
	KindVisualization AnalysisKind = "visualization"
)

// RiskLevel is the three-step risk scale the model is instructed to use.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Valid reports whether the value is one of Low/Medium/High.
func (r RiskLevel) Valid() bool {
	return r == RiskLow || r == RiskMedium || r == RiskHigh
}

// EffortLevel rates the impact or implementation effort of a suggestion.
// It shares the scale of RiskLevel but is a distinct wire concept.
type EffortLevel string

const (
	EffortLow    EffortLevel = "Low"
	EffortMedium EffortLevel = "Medium"
	EffortHigh   EffortLevel = "High"
)

func (e EffortLevel) Valid() bool {
	return e == EffortLow || e == EffortMedium || e == EffortHigh
}

var ErrEmptyReport = errors.New("audit report text is empty")

// ModelParseError means the model's reply, after code-fence stripping, was not
// valid JSON. Raw carries the cleaned text so the caller can surface it for
// diagnosis.
type ModelParseError struct {
	Raw string
	Err error
}

func (e *ModelParseError) Error() string {
	return fmt.Sprintf("parse model response: %v", e.Err)
}

func (e *ModelParseError) Unwrap() error { return e.Err }

// ContractError means the model's reply parsed as JSON but violated the shape
// the prompt demanded.
type ContractError struct {
	Kind   AnalysisKind
	Reason string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("model response for %s violated contract: %s", e.Kind, e.Reason)
}

// ReportSummary is the artifact of the summarize pipeline.
type ReportSummary struct {
	Summary         string  `json:"summary"`
	KeyFinding      int     `json:"keyFinding"`
	RiskAreas       int     `json:"riskAreas"`
	ComplianceScore float64 `json:"complianceScore"`
}

func (s *ReportSummary) Validate() error {
	if s.Summary == "" {
		return &ContractError{Kind: KindSummary, Reason: "summary text is empty"}
	}
	if s.KeyFinding < 0 || s.RiskAreas < 0 {
		return &ContractError{Kind: KindSummary, Reason: "finding and risk-area counts must be non-negative"}
	}
	if s.ComplianceScore < 0 || s.ComplianceScore > 100 {
		return &ContractError{Kind: KindSummary, Reason: fmt.Sprintf("complianceScore %v outside 0-100", s.ComplianceScore)}
	}
	return nil
}

// Metric is a single named 0-100 score.
type Metric struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// ReportAnalysis is the artifact of the analysis pipeline.
type ReportAnalysis struct {
	OverallScore float64   `json:"overallScore"`
	RiskLevel    RiskLevel `json:"riskLevel"`
	KeyFindings  []string  `json:"keyFindings"`
	Metrics      []Metric  `json:"metrics"`
}

func (a *ReportAnalysis) Validate() error {
	if a.OverallScore < 0 || a.OverallScore > 100 {
		return &ContractError{Kind: KindAnalysis, Reason: fmt.Sprintf("overallScore %v outside 0-100", a.OverallScore)}
	}
	if !a.RiskLevel.Valid() {
		return &ContractError{Kind: KindAnalysis, Reason: fmt.Sprintf("riskLevel %q not one of Low/Medium/High", a.RiskLevel)}
	}
	if len(a.KeyFindings) == 0 {
		return &ContractError{Kind: KindAnalysis, Reason: "keyFindings is empty"}
	}
	for _, m := range a.Metrics {
		if m.Score < 0 || m.Score > 100 {
			return &ContractError{Kind: KindAnalysis, Reason: fmt.Sprintf("metric %q score %v outside 0-100", m.Name, m.Score)}
		}
	}
	return nil
}

// Suggestion is one actionable improvement in the suggestions artifact.
type Suggestion struct {
	ID         int         `json:"id"`
	Category   string      `json:"category"`
	Suggestion string      `json:"suggestion"`
	Impact     EffortLevel `json:"impact"`
	Effort     EffortLevel `json:"effort"`
}

const minSuggestions = 3

// ValidateSuggestions checks the suggestions artifact: at least three entries,
// each with positive id, text, and valid impact/effort levels.
func ValidateSuggestions(list []Suggestion) error {
	if len(list) < minSuggestions {
		return &ContractError{Kind: KindSuggestions, Reason: fmt.Sprintf("expected at least %d suggestions, got %d", minSuggestions, len(list))}
	}
	for i, s := range list {
		if s.ID < 1 {
			return &ContractError{Kind: KindSuggestions, Reason: fmt.Sprintf("suggestion[%d] id %d must be >= 1", i, s.ID)}
		}
		if s.Suggestion == "" {
			return &ContractError{Kind: KindSuggestions, Reason: fmt.Sprintf("suggestion[%d] text is empty", i)}
		}
		if !s.Impact.Valid() {
			return &ContractError{Kind: KindSuggestions, Reason: fmt.Sprintf("suggestion[%d] impact %q invalid", i, s.Impact)}
		}
		if !s.Effort.Valid() {
			return &ContractError{Kind: KindSuggestions, Reason: fmt.Sprintf("suggestion[%d] effort %q invalid", i, s.Effort)}
		}
	}
	return nil
}

// NamedValue is a generic {name, value} datapoint used by insights and charts.
type NamedValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// VulnerabilityCount tallies occurrences of one vulnerability class.
type VulnerabilityCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TrendPoint is one month of the incident trend series.
type TrendPoint struct {
	Month     string `json:"month"`
	Incidents int    `json:"incidents"`
}

// ReportInsights is the artifact of the insights pipeline.
type ReportInsights struct {
	Compliance      []Metric             `json:"compliance"`
	Risk            []NamedValue         `json:"risk"`
	Vulnerabilities []VulnerabilityCount `json:"vulnerabilities"`
	Trend           []TrendPoint         `json:"trend"`
}

func (in *ReportInsights) Validate() error {
	if len(in.Compliance) == 0 {
		return &ContractError{Kind: KindInsights, Reason: "compliance series is empty"}
	}
	if len(in.Risk) == 0 {
		return &ContractError{Kind: KindInsights, Reason: "risk series is empty"}
	}
	if len(in.Vulnerabilities) == 0 {
		return &ContractError{Kind: KindInsights, Reason: "vulnerabilities series is empty"}
	}
	if len(in.Trend) == 0 {
		return &ContractError{Kind: KindInsights, Reason: "trend series is empty"}
	}
	for _, c := range in.Compliance {
		if c.Score < 0 || c.Score > 100 {
			return &ContractError{Kind: KindInsights, Reason: fmt.Sprintf("compliance metric %q score %v outside 0-100", c.Name, c.Score)}
		}
	}
	return nil
}

const minSamplePoints = 6

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Visualization is the chart-ready artifact of the visualization pipeline.
type Visualization struct {
	SampleData []NamedValue `json:"sampleData"`
	Colors     []string     `json:"colors"`
}

func (v *Visualization) Validate() error {
	if len(v.SampleData) < minSamplePoints {
		return &ContractError{Kind: KindVisualization, Reason: fmt.Sprintf("expected at least %d sampleData points, got %d", minSamplePoints, len(v.SampleData))}
	}
	if len(v.Colors) == 0 {
		return &ContractError{Kind: KindVisualization, Reason: "colors is empty"}
	}
	for _, c := range v.Colors {
		if !hexColor.MatchString(c) {
			return &ContractError{Kind: KindVisualization, Reason: fmt.Sprintf("color %q is not a hex color code", c)}
		}
	}
	return nil
}
