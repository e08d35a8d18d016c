package usecase_test

import (
	"strings"
	"testing"

	"github.com/labchain/anamnesis/pkg/domain/model"
	"github.com/labchain/anamnesis/pkg/domain/types"
	"github.com/labchain/anamnesis/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func containsFactor(factors []string, want string) bool {
	for _, f := range factors {
		if strings.Contains(f, want) {
			return true
		}
	}
	return false
}

func TestMatchingFactors_EmotionalProximity(t *testing.T) {
	currentCase := &model.CurrentCase{
		EmotionalState: model.EmotionalState{Depression: 5, Anxiety: 5, Loneliness: 5},
	}

	// Summed difference 5: below the threshold
	near := &model.HistoricalRecord{
		EmotionalState: model.EmotionalState{Depression: 7, Anxiety: 7, Loneliness: 6},
	}
	gt.Bool(t, containsFactor(usecase.MatchingFactors(currentCase, near), "유사한 감정 상태")).True()

	// Summed difference exactly 6: threshold is exclusive
	boundary := &model.HistoricalRecord{
		EmotionalState: model.EmotionalState{Depression: 7, Anxiety: 7, Loneliness: 7},
	}
	gt.Bool(t, containsFactor(usecase.MatchingFactors(currentCase, boundary), "유사한 감정 상태")).False()
}

func TestMatchingFactors_MoodMatch(t *testing.T) {
	currentCase := &model.CurrentCase{
		EmotionalState: model.EmotionalState{Depression: 9, Anxiety: 9, Loneliness: 9, Mood: " 우울함 "},
	}
	record := &model.HistoricalRecord{
		EmotionalState: model.EmotionalState{Mood: "우울함"},
	}

	factors := usecase.MatchingFactors(currentCase, record)
	gt.Bool(t, containsFactor(factors, "동일한 기분 상태")).True()

	// Empty moods never count as matching
	empty := usecase.MatchingFactors(
		&model.CurrentCase{EmotionalState: model.EmotionalState{Depression: 9, Anxiety: 9, Loneliness: 9}},
		&model.HistoricalRecord{},
	)
	gt.Bool(t, containsFactor(empty, "동일한 기분 상태")).False()
}

func TestMatchingFactors_ChallengeOverlap(t *testing.T) {
	currentCase := &model.CurrentCase{
		EmotionalState: model.EmotionalState{Depression: 9, Anxiety: 9, Loneliness: 9},
		Challenges:     []string{"수면", "가족 갈등"},
	}
	record := &model.HistoricalRecord{
		Challenges: []string{"수면 문제", "경제적 어려움"},
	}

	factors := usecase.MatchingFactors(currentCase, record)
	gt.Bool(t, containsFactor(factors, "공통 과제: 수면")).True()
	gt.Bool(t, containsFactor(factors, "가족 갈등")).False()
}

func TestMatchingFactors_OutcomeQuality(t *testing.T) {
	currentCase := &model.CurrentCase{
		EmotionalState: model.EmotionalState{Depression: 9, Anxiety: 9, Loneliness: 9},
	}

	record := &model.HistoricalRecord{
		RiskLevel:     types.RiskLevelHigh,
		Effectiveness: 8,
	}
	factors := usecase.MatchingFactors(currentCase, record)
	gt.Bool(t, containsFactor(factors, "고위험 사례")).True()
	gt.Bool(t, containsFactor(factors, "높은 효과성")).True()

	modest := &model.HistoricalRecord{
		RiskLevel:     types.RiskLevelLow,
		Effectiveness: 7,
	}
	factors = usecase.MatchingFactors(currentCase, modest)
	gt.Bool(t, containsFactor(factors, "고위험 사례")).False()
	gt.Bool(t, containsFactor(factors, "높은 효과성")).False()
}

func TestRelevantInsights(t *testing.T) {
	record := &model.HistoricalRecord{
		Interventions: []string{"회상 요법", "인지 재구성", "호흡 훈련"},
		Breakthroughs: []string{"가족과의 통화 재개", "산책 습관"},
		RiskLevel:     types.RiskLevelHigh,
		Effectiveness: 7,
	}

	insights := usecase.RelevantInsights(record)
	gt.Array(t, insights).Length(3)
	gt.Value(t, insights[0]).Equal("효과적인 개입: 회상 요법, 인지 재구성")
	gt.Value(t, insights[1]).Equal("성공 요인: 가족과의 통화 재개")
	gt.Value(t, insights[2]).Equal("고위험 상황에서의 효과적 관리 사례")
}

func TestRelevantInsights_LowEffectiveness(t *testing.T) {
	record := &model.HistoricalRecord{
		Interventions: []string{"회상 요법"},
		Effectiveness: 5,
	}
	gt.Array(t, usecase.RelevantInsights(record)).Length(0)
}
