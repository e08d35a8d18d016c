package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/labchain/anamnesis/pkg/domain/model"
)

// DefaultSuccessProbability is the neutral midpoint used when the
// generation response carries no parseable success score.
const DefaultSuccessProbability = 5

var (
	listItemRe    = regexp.MustCompile(`^([-*•]|\d+\.)\s+`)
	probabilityRe = regexp.MustCompile(`성공 확률[:\s]*(\d+)`)
)

// Section headers the generation service is instructed to emit. The
// parser matches by containment so numbering and decoration around the
// header may vary.
const (
	sectionCommonPatterns  = "공통 패턴"
	sectionInterventions   = "성공적인 개입"
	sectionRiskFactors     = "위험 요소"
	sectionPredictive      = "예측적 통찰"
	sectionRecommendations = "권장사항"

	sectionHistoricalInsights = "역사적 통찰"
	sectionRecommendedActions = "추천 개입"
	sectionRiskPredictions    = "위험 예측"
	sectionSuccessProbability = "성공 확률"
)

var sectionHeaders = []string{
	sectionCommonPatterns,
	sectionInterventions,
	sectionRiskFactors,
	sectionPredictive,
	sectionRecommendations,
	sectionHistoricalInsights,
	sectionRecommendedActions,
	sectionRiskPredictions,
	sectionSuccessProbability,
}

func isSectionHeader(line string) bool {
	for _, header := range sectionHeaders {
		if strings.Contains(line, header) {
			return true
		}
	}
	return false
}

// extractListItems collects the bullet or numbered lines following the
// first line containing the section header, stopping at the next
// non-list content line. A missing section yields nil, never an error:
// the upstream text is not contractually well-formed.
func extractListItems(text, section string) []string {
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		if strings.Contains(line, section) {
			start = i
			break
		}
	}
	if start == -1 {
		return nil
	}

	var items []string
	for _, raw := range lines[start+1:] {
		line := strings.TrimSpace(raw)
		// Numbered responses render the next header as "2. 성공적인 개입:",
		// which would otherwise match the numbered-item pattern.
		if isSectionHeader(line) {
			break
		}
		if listItemRe.MatchString(line) {
			items = append(items, listItemRe.ReplaceAllString(line, ""))
			continue
		}
		if line != "" && !strings.Contains(line, ":") && len(items) > 0 {
			break
		}
	}
	return items
}

// extractSuccessProbability finds the first integer following the
// success-probability label, defaulting when absent or unparseable.
func extractSuccessProbability(text string) int {
	m := probabilityRe.FindStringSubmatch(text)
	if m == nil {
		return DefaultSuccessProbability
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return DefaultSuccessProbability
	}
	return v
}

// parsePatternAnalysis maps the five-section generation response onto
// the typed result. Sections that cannot be located degrade to empty
// lists and are reported in MissingSections.
func parsePatternAnalysis(text string) *model.PatternAnalysis {
	analysis := &model.PatternAnalysis{
		CommonPatterns:          extractListItems(text, sectionCommonPatterns),
		SuccessfulInterventions: extractListItems(text, sectionInterventions),
		RiskFactors:             extractListItems(text, sectionRiskFactors),
		PredictiveInsights:      extractListItems(text, sectionPredictive),
		Recommendations:         extractListItems(text, sectionRecommendations),
	}

	for _, section := range []struct {
		name  string
		items []string
	}{
		{sectionCommonPatterns, analysis.CommonPatterns},
		{sectionInterventions, analysis.SuccessfulInterventions},
		{sectionRiskFactors, analysis.RiskFactors},
		{sectionPredictive, analysis.PredictiveInsights},
		{sectionRecommendations, analysis.Recommendations},
	} {
		if len(section.items) == 0 {
			analysis.MissingSections = append(analysis.MissingSections, section.name)
		}
	}

	return analysis
}

// parseCaseInsights maps the four-section case insight response onto
// the typed result, with the documented probability default.
func parseCaseInsights(text string) *model.CaseInsights {
	insights := &model.CaseInsights{
		HistoricalInsights:       extractListItems(text, sectionHistoricalInsights),
		RecommendedInterventions: extractListItems(text, sectionRecommendedActions),
		RiskPredictions:          extractListItems(text, sectionRiskPredictions),
		SuccessProbability:       extractSuccessProbability(text),
	}

	for _, section := range []struct {
		name  string
		items []string
	}{
		{sectionHistoricalInsights, insights.HistoricalInsights},
		{sectionRecommendedActions, insights.RecommendedInterventions},
		{sectionRiskPredictions, insights.RiskPredictions},
	} {
		if len(section.items) == 0 {
			insights.MissingSections = append(insights.MissingSections, section.name)
		}
	}

	return insights
}
