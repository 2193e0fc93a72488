package domain

import "testing"

func TestReportSummary_Validate(t *testing.T) {
	ok := ReportSummary{Summary: "text", KeyFinding: 3, RiskAreas: 2, ComplianceScore: 80}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid summary rejected: %v", err)
	}

	empty := ReportSummary{KeyFinding: 1, RiskAreas: 1, ComplianceScore: 50}
	if err := empty.Validate(); err == nil {
		t.Fatalf("empty summary accepted")
	}

	outOfRange := ReportSummary{Summary: "text", ComplianceScore: 120}
	if err := outOfRange.Validate(); err == nil {
		t.Fatalf("complianceScore over 100 accepted")
	}
}

func TestReportAnalysis_Validate(t *testing.T) {
	ok := ReportAnalysis{
		OverallScore: 70,
		RiskLevel:    RiskMedium,
		KeyFindings:  []string{"gap"},
		Metrics:      []Metric{{Name: "m", Score: 55}},
	}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid analysis rejected: %v", err)
	}

	badLevel := ok
	badLevel.RiskLevel = "Severe"
	if err := badLevel.Validate(); err == nil {
		t.Fatalf("unknown risk level accepted")
	}

	badMetric := ok
	badMetric.Metrics = []Metric{{Name: "m", Score: 101}}
	if err := badMetric.Validate(); err == nil {
		t.Fatalf("metric score over 100 accepted")
	}

	noFindings := ok
	noFindings.KeyFindings = nil
	if err := noFindings.Validate(); err == nil {
		t.Fatalf("empty keyFindings accepted")
	}
}

func TestValidateSuggestions(t *testing.T) {
	valid := []Suggestion{
		{ID: 1, Category: "Risk Management", Suggestion: "a", Impact: EffortHigh, Effort: EffortLow},
		{ID: 2, Category: "Compliance", Suggestion: "b", Impact: EffortMedium, Effort: EffortMedium},
		{ID: 3, Category: "Financial Controls", Suggestion: "c", Impact: EffortLow, Effort: EffortHigh},
	}
	if err := ValidateSuggestions(valid); err != nil {
		t.Fatalf("valid suggestions rejected: %v", err)
	}

	if err := ValidateSuggestions(valid[:2]); err == nil {
		t.Fatalf("fewer than three suggestions accepted")
	}

	badImpact := append([]Suggestion(nil), valid...)
	badImpact[1].Impact = "Critical"
	if err := ValidateSuggestions(badImpact); err == nil {
		t.Fatalf("invalid impact level accepted")
	}

	badID := append([]Suggestion(nil), valid...)
	badID[0].ID = 0
	if err := ValidateSuggestions(badID); err == nil {
		t.Fatalf("zero id accepted")
	}
}

func TestReportInsights_Validate(t *testing.T) {
	ok := ReportInsights{
		Compliance:      []Metric{{Name: "Data Protection", Score: 75}},
		Risk:            []NamedValue{{Name: "Insider Threat Risk", Value: 40}},
		Vulnerabilities: []VulnerabilityCount{{Name: "Unpatched Software", Count: 7}},
		Trend:           []TrendPoint{{Month: "January", Incidents: 2}},
	}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid insights rejected: %v", err)
	}

	missing := ok
	missing.Trend = nil
	if err := missing.Validate(); err == nil {
		t.Fatalf("missing trend series accepted")
	}
}

func TestVisualization_Validate(t *testing.T) {
	sample := []NamedValue{
		{Name: "Jan", Value: 10}, {Name: "Feb", Value: 20}, {Name: "Mar", Value: 30},
		{Name: "Apr", Value: 40}, {Name: "May", Value: 50}, {Name: "Jun", Value: 60},
	}

	ok := Visualization{SampleData: sample, Colors: []string{"#FF5733", "#33ff57"}}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid visualization rejected: %v", err)
	}

	short := Visualization{SampleData: sample[:5], Colors: []string{"#FF5733"}}
	if err := short.Validate(); err == nil {
		t.Fatalf("fewer than six datapoints accepted")
	}

	badColor := Visualization{SampleData: sample, Colors: []string{"red"}}
	if err := badColor.Validate(); err == nil {
		t.Fatalf("non-hex color accepted")
	}
}
