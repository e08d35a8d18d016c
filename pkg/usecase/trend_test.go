package usecase_test

import (
	"testing"

	"github.com/labchain/anamnesis/pkg/domain/model"
	"github.com/labchain/anamnesis/pkg/domain/types"
	"github.com/labchain/anamnesis/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestCalculateTrends_ImprovingDepression(t *testing.T) {
	// Sessions 2 and 3 of a history with depression [8,5,2], plus the
	// current session appended: latest=2 vs two-back=5, diff -3.
	history := []model.EmotionalState{
		{Depression: 5, Anxiety: 6, Loneliness: 4, Anger: 2},
		{Depression: 2, Anxiety: 6, Loneliness: 4, Anger: 2},
		{Depression: 2, Anxiety: 6, Loneliness: 4, Anger: 2}, // current
	}

	trends := usecase.CalculateTrends(history)
	gt.Array(t, trends).Length(4).Required()

	gt.Value(t, trends[0].Metric).Equal("depression")
	gt.Value(t, trends[0].Change).Equal(-3.0)
	gt.Value(t, trends[0].Trend).Equal(types.TrendImproving)

	gt.Value(t, trends[1].Metric).Equal("anxiety")
	gt.Value(t, trends[1].Trend).Equal(types.TrendStable)
}

func TestCalculateTrends_TwoSnapshotsUseEarliest(t *testing.T) {
	history := []model.EmotionalState{
		{Depression: 3},
		{Depression: 8},
	}

	trends := usecase.CalculateTrends(history)
	gt.Array(t, trends).Length(4).Required()
	gt.Value(t, trends[0].Previous).Equal(3)
	gt.Value(t, trends[0].Current).Equal(8)
	gt.Value(t, trends[0].Trend).Equal(types.TrendWorsening)
}

func TestCalculateTrends_TooShort(t *testing.T) {
	gt.Array(t, usecase.CalculateTrends(nil)).Length(0)
	gt.Array(t, usecase.CalculateTrends([]model.EmotionalState{{Depression: 5}})).Length(0)
}

func TestRecencyWeights(t *testing.T) {
	weights := usecase.RecencyWeights(4)
	gt.Array(t, weights).Length(4).Required()
	gt.Value(t, weights[0]).Equal(1.0)
	gt.Value(t, weights[1]).Equal(0.8)

	// Geometric decay: each step multiplies by 0.8
	for i := 1; i < len(weights); i++ {
		ratio := weights[i] / weights[i-1]
		gt.Bool(t, ratio > 0.799 && ratio < 0.801).True()
	}

	gt.Array(t, usecase.RecencyWeights(0)).Length(0)
}

func TestWeightedTopics(t *testing.T) {
	// Newest first: 가족 appears in both sessions, 산책 only in the older
	records := []*model.HistoricalRecord{
		{SpecialNotes: "가족 이야기에 밝아짐"},
		{SpecialNotes: "산책 중 가족 통화", Summary: "산책 습관 논의"},
	}

	topics := usecase.WeightedTopics(records, []string{"가족", "산책", "음악"}, 5)
	gt.Array(t, topics).Length(2).Required()
	// 가족: 1.0 + 0.8 = 1.8; 산책: 0.8
	gt.Value(t, topics[0]).Equal("가족")
	gt.Value(t, topics[1]).Equal("산책")

	gt.Array(t, usecase.WeightedTopics(records, []string{"가족"}, 0)).Length(0)
}

func TestKeyTopics_ReordersByDate(t *testing.T) {
	// Deliberately unsorted; KeyTopics must weight by date, newest first.
	records := []*model.HistoricalRecord{
		{Date: "2024-01-05", SpecialNotes: "산책 중 편안함"},
		{Date: "2024-03-05", Summary: "가족 갈등 논의"},
		{Date: "2024-02-05", SpecialNotes: "가족 사진과 추억 회상"},
	}

	topics := usecase.KeyTopics(records)
	gt.Array(t, topics).Length(4).Required()
	// 가족: 1.0 + 0.8; 사진/추억: 0.8 each; 산책: 0.64
	gt.Value(t, topics[0]).Equal("가족")
	gt.Value(t, topics[3]).Equal("산책")
	gt.Array(t, topics).Has("사진")
	gt.Array(t, topics).Has("추억")

	gt.Array(t, usecase.KeyTopics(nil)).Length(0)
}

func TestSummarizeProgress_Bands(t *testing.T) {
	build := func(firstDep, firstAnx, firstLon, lastDep, lastAnx, lastLon int) []*model.HistoricalRecord {
		return []*model.HistoricalRecord{
			{EmotionalState: model.EmotionalState{Depression: firstDep, Anxiety: firstAnx, Loneliness: firstLon}},
			{EmotionalState: model.EmotionalState{Depression: lastDep, Anxiety: lastAnx, Loneliness: lastLon}},
		}
	}

	tests := []struct {
		name       string
		records    []*model.HistoricalRecord
		overall    string
		trajectory types.Trend
	}{
		{
			name:       "marked improvement",
			records:    build(8, 8, 8, 5, 5, 6), // total +8
			overall:    "전반적으로 뚜렷한 개선",
			trajectory: types.TrendImproving,
		},
		{
			name:       "gradual improvement",
			records:    build(6, 6, 6, 5, 5, 6), // total +2
			overall:    "전반적으로 점진적 개선",
			trajectory: types.TrendImproving,
		},
		{
			name:       "holding steady",
			records:    build(5, 5, 5, 5, 5, 5), // total 0
			overall:    "현상 유지",
			trajectory: types.TrendStable,
		},
		{
			name:       "slight worsening",
			records:    build(5, 5, 5, 6, 6, 5), // total -2
			overall:    "전반적으로 약간 악화",
			trajectory: types.TrendWorsening,
		},
		{
			name:       "significant worsening",
			records:    build(3, 3, 3, 6, 6, 5), // total -8
			overall:    "전반적으로 상당한 악화",
			trajectory: types.TrendWorsening,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := usecase.SummarizeProgress(tt.records)
			gt.Value(t, summary.Overall).Equal(tt.overall)
			gt.Value(t, summary.Trajectory).Equal(tt.trajectory)
		})
	}
}

func TestSummarizeProgress_PerMetricNotes(t *testing.T) {
	records := []*model.HistoricalRecord{
		{EmotionalState: model.EmotionalState{Depression: 8, Anxiety: 4, Loneliness: 5}},
		{EmotionalState: model.EmotionalState{Depression: 4, Anxiety: 7, Loneliness: 5}},
	}

	summary := usecase.SummarizeProgress(records)
	gt.Array(t, summary.Improvements).Length(1)
	gt.Value(t, summary.Improvements[0]).Equal("우울감 현저한 개선")
	gt.Array(t, summary.Concerns).Length(1)
	gt.Value(t, summary.Concerns[0]).Equal("불안감 증가")
}

func TestSummarizeProgress_SingleSession(t *testing.T) {
	summary := usecase.SummarizeProgress([]*model.HistoricalRecord{{}})
	gt.Value(t, summary.Overall).Equal("초기 단계로 진전 평가 불가")
	gt.Value(t, summary.Trajectory).Equal(types.TrendStable)
}
