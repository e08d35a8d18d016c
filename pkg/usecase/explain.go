package usecase

import (
	"fmt"
	"strings"

	"github.com/labchain/anamnesis/pkg/domain/model"
	"github.com/labchain/anamnesis/pkg/domain/types"
)

// emotionalProximityThreshold is the summed absolute difference across
// depression/anxiety/loneliness below which two cases count as
// emotionally similar (average per-dimension difference <= 2).
const emotionalProximityThreshold = 6

// MatchingFactors computes short human-readable reasons why a candidate
// record resembles the current case. Pure and local: no service calls,
// so explanations stay fast, free, and reproducible.
func MatchingFactors(currentCase *model.CurrentCase, record *model.HistoricalRecord) []string {
	var factors []string

	diff := absInt(currentCase.EmotionalState.Depression-record.EmotionalState.Depression) +
		absInt(currentCase.EmotionalState.Anxiety-record.EmotionalState.Anxiety) +
		absInt(currentCase.EmotionalState.Loneliness-record.EmotionalState.Loneliness)
	if diff < emotionalProximityThreshold {
		factors = append(factors, "유사한 감정 상태")
	}

	if normalizeMood(currentCase.EmotionalState.Mood) == normalizeMood(record.EmotionalState.Mood) &&
		normalizeMood(record.EmotionalState.Mood) != "" {
		factors = append(factors, "동일한 기분 상태")
	}

	if shared := sharedChallenges(currentCase.Challenges, record.Challenges); len(shared) > 0 {
		factors = append(factors, fmt.Sprintf("공통 과제: %s", strings.Join(shared, ", ")))
	}

	if record.RiskLevel == types.RiskLevelHigh {
		factors = append(factors, "고위험 사례")
	}
	if record.Effectiveness >= 8 {
		factors = append(factors, "높은 효과성")
	}

	return factors
}

// RelevantInsights extracts case-specific, rule-based takeaways from a
// candidate record.
func RelevantInsights(record *model.HistoricalRecord) []string {
	var insights []string

	if record.Effectiveness >= 7 && len(record.Interventions) > 0 {
		top := record.Interventions
		if len(top) > 2 {
			top = top[:2]
		}
		insights = append(insights, fmt.Sprintf("효과적인 개입: %s", strings.Join(top, ", ")))
	}

	if len(record.Breakthroughs) > 0 {
		insights = append(insights, fmt.Sprintf("성공 요인: %s", record.Breakthroughs[0]))
	}

	if record.RiskLevel == types.RiskLevelHigh && record.Effectiveness >= 6 {
		insights = append(insights, "고위험 상황에서의 효과적 관리 사례")
	}

	return insights
}

// sharedChallenges returns the current challenges that overlap a
// candidate challenge by case-insensitive substring in either direction.
func sharedChallenges(current, candidate []string) []string {
	var shared []string
	for _, challenge := range current {
		lc := strings.ToLower(challenge)
		for _, other := range candidate {
			lo := strings.ToLower(other)
			if lc == "" || lo == "" {
				continue
			}
			if strings.Contains(lo, lc) || strings.Contains(lc, lo) {
				shared = append(shared, challenge)
				break
			}
		}
	}
	return shared
}

func normalizeMood(mood string) string {
	return strings.ToLower(strings.TrimSpace(mood))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
