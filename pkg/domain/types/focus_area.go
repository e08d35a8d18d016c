package types

import "fmt"

// FocusArea represents the analytical focus of a pattern analysis request
type FocusArea string

const (
	FocusAreaInterventions   FocusArea = "interventions"
	FocusAreaOutcomes        FocusArea = "outcomes"
	FocusAreaEmotionalTrends FocusArea = "emotional_trends"
	FocusAreaRiskFactors     FocusArea = "risk_factors"
)

// AllFocusAreas returns all valid focus areas
func AllFocusAreas() []FocusArea {
	return []FocusArea{
		FocusAreaInterventions,
		FocusAreaOutcomes,
		FocusAreaEmotionalTrends,
		FocusAreaRiskFactors,
	}
}

// IsValid checks if the focus area is valid
func (f FocusArea) IsValid() bool {
	switch f {
	case FocusAreaInterventions,
		FocusAreaOutcomes,
		FocusAreaEmotionalTrends,
		FocusAreaRiskFactors:
		return true
	default:
		return false
	}
}

// String returns the string representation of the focus area
func (f FocusArea) String() string {
	return string(f)
}

// Label returns the Korean display label used in generation prompts.
// The generation service converses in Korean, matching the corpus.
func (f FocusArea) Label() string {
	switch f {
	case FocusAreaInterventions:
		return "개입 전략"
	case FocusAreaOutcomes:
		return "치료 결과"
	case FocusAreaEmotionalTrends:
		return "감정 변화 추이"
	case FocusAreaRiskFactors:
		return "위험 요소"
	default:
		return string(f)
	}
}

// ParseFocusArea parses a string into a FocusArea
func ParseFocusArea(s string) (FocusArea, error) {
	area := FocusArea(s)
	if !area.IsValid() {
		return "", fmt.Errorf("invalid focus area: %s", s)
	}
	return area, nil
}
