package model

import (
	"github.com/labchain/anamnesis/pkg/domain/types"
)

// PatternAnalysis is the cross-record synthesis for one focus area.
// Produced per request, never cached.
type PatternAnalysis struct {
	CommonPatterns          []string `json:"commonPatterns"`
	SuccessfulInterventions []string `json:"successfulInterventions"`
	RiskFactors             []string `json:"riskFactors"`
	PredictiveInsights      []string `json:"predictiveInsights"`
	Recommendations         []string `json:"recommendations"`
	// MissingSections lists response sections the parser could not
	// locate. Non-empty means the result degraded rather than failed.
	MissingSections []string `json:"missingSections,omitempty"`
}

// CaseInsights is the generated guidance for a current case, grounded
// in its most similar historical cases.
type CaseInsights struct {
	HistoricalInsights       []string `json:"historicalInsights"`
	RecommendedInterventions []string `json:"recommendedInterventions"`
	RiskPredictions          []string `json:"riskPredictions"`
	// SuccessProbability is a 1-10 score; defaults to 5 when the
	// generation response carries no parseable score.
	SuccessProbability int      `json:"successProbability"`
	MissingSections    []string `json:"missingSections,omitempty"`
}

// EmotionalTrend is the directional change of one emotion metric.
type EmotionalTrend struct {
	Metric   string      `json:"metric"`
	Current  int         `json:"current"`
	Previous int         `json:"previous"`
	Change   float64     `json:"change"`
	Trend    types.Trend `json:"trend"`
}

// ProgressSummary buckets the overall first-vs-latest change of a
// client's session history into a qualitative band.
type ProgressSummary struct {
	Overall      string      `json:"overall"`
	Improvements []string    `json:"improvements"`
	Concerns     []string    `json:"concerns"`
	Trajectory   types.Trend `json:"trajectory"`
}
