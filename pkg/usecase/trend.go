package usecase

import (
	"math"
	"sort"
	"strings"

	"github.com/labchain/anamnesis/pkg/domain/model"
	"github.com/labchain/anamnesis/pkg/domain/types"
)

// recencyDecay is the geometric down-weighting base for older sessions:
// session i counting backward from the most recent weighs recencyDecay^i.
const recencyDecay = 0.8

// CalculateTrends computes the directional change of each emotion
// metric across a time-ordered sequence of snapshots (oldest first; the
// caller may append the current session at the end). Each metric
// compares the most recent value against the value two records back, or
// the earliest available when history is shorter.
func CalculateTrends(history []model.EmotionalState) []model.EmotionalTrend {
	if len(history) < 2 {
		return nil
	}

	latest := history[len(history)-1]
	refIdx := len(history) - 3
	if refIdx < 0 {
		refIdx = 0
	}
	reference := history[refIdx]

	metrics := []struct {
		name     string
		current  int
		previous int
	}{
		{"depression", latest.Depression, reference.Depression},
		{"anxiety", latest.Anxiety, reference.Anxiety},
		{"loneliness", latest.Loneliness, reference.Loneliness},
		{"anger", latest.Anger, reference.Anger},
	}

	trends := make([]model.EmotionalTrend, 0, len(metrics))
	for _, m := range metrics {
		change := float64(m.current - m.previous)
		trends = append(trends, model.EmotionalTrend{
			Metric:   m.name,
			Current:  m.current,
			Previous: m.previous,
			Change:   change,
			Trend:    types.ClassifyTrend(change),
		})
	}
	return trends
}

// RecencyWeights returns n geometric weights, newest first: 1, 0.8,
// 0.64, ... Older sessions still contribute but cannot dominate.
func RecencyWeights(n int) []float64 {
	if n <= 0 {
		return nil
	}
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = math.Pow(recencyDecay, float64(i))
	}
	return weights
}

// topicKeywords is the vocabulary scanned for recurring themes in a
// client's narrative fields. Scores are recency-weighted so a topic
// from last month cannot outrank one from this week.
var topicKeywords = []string{
	"가족", "손자", "아들", "이웃", "산책", "외로움", "추억", "사진",
	"호흡", "운동", "음악", "TV", "화분", "마트", "공원", "놀이",
}

const keyTopicLimit = 5

// KeyTopics returns the dominant recurring themes of a record set,
// newest sessions weighing heaviest. The input order does not matter;
// records are re-sorted by date before weighting.
func KeyTopics(records []*model.HistoricalRecord) []string {
	sorted := make([]*model.HistoricalRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	return WeightedTopics(sorted, topicKeywords, keyTopicLimit)
}

// WeightedTopics aggregates keyword occurrences across records with
// recency weighting and returns up to limit topics, heaviest first. The
// records must be ordered newest first.
func WeightedTopics(records []*model.HistoricalRecord, keywords []string, limit int) []string {
	if limit <= 0 || len(records) == 0 {
		return nil
	}

	scores := make(map[string]float64)
	weights := RecencyWeights(len(records))
	for i, record := range records {
		text := strings.ToLower(strings.Join([]string{
			record.SpecialNotes,
			record.Summary,
			strings.Join(record.Challenges, " "),
		}, " "))
		for _, keyword := range keywords {
			if strings.Contains(text, strings.ToLower(keyword)) {
				scores[keyword] += weights[i]
			}
		}
	}

	topics := make([]string, 0, len(scores))
	for keyword := range scores {
		topics = append(topics, keyword)
	}
	sort.SliceStable(topics, func(i, j int) bool {
		if scores[topics[i]] != scores[topics[j]] {
			return scores[topics[i]] > scores[topics[j]]
		}
		return topics[i] < topics[j]
	})

	if limit > len(topics) {
		limit = len(topics)
	}
	return topics[:limit]
}

// Progress bands over the summed first-vs-latest deltas. The thresholds
// are deliberately symmetric; this is the single place that decides how
// much change matters.
const (
	progressMarkedImprovement = 3
	progressGradual           = 1
)

// SummarizeProgress buckets the overall change between a client's first
// and latest session into a qualitative band, with per-metric
// improvement and concern notes. Records must be ordered oldest first.
func SummarizeProgress(records []*model.HistoricalRecord) model.ProgressSummary {
	if len(records) < 2 {
		return model.ProgressSummary{
			Overall:    "초기 단계로 진전 평가 불가",
			Trajectory: types.TrendStable,
		}
	}

	first := records[0].EmotionalState
	latest := records[len(records)-1].EmotionalState

	// Positive delta = score dropped = improvement
	deltas := []struct {
		improvement string
		concern     string
		delta       int
	}{
		{"우울감 현저한 개선", "우울감 악화", first.Depression - latest.Depression},
		{"불안감 현저한 완화", "불안감 증가", first.Anxiety - latest.Anxiety},
		{"외로움 현저한 감소", "외로움 심화", first.Loneliness - latest.Loneliness},
	}

	summary := model.ProgressSummary{}
	total := 0
	for _, d := range deltas {
		total += d.delta
		if d.delta > 1 {
			summary.Improvements = append(summary.Improvements, d.improvement)
		} else if d.delta < -1 {
			summary.Concerns = append(summary.Concerns, d.concern)
		}
	}

	switch {
	case total > progressMarkedImprovement:
		summary.Overall = "전반적으로 뚜렷한 개선"
	case total > progressGradual:
		summary.Overall = "전반적으로 점진적 개선"
	case total > -progressGradual:
		summary.Overall = "현상 유지"
	case total > -progressMarkedImprovement:
		summary.Overall = "전반적으로 약간 악화"
	default:
		summary.Overall = "전반적으로 상당한 악화"
	}

	switch {
	case total > progressGradual:
		summary.Trajectory = types.TrendImproving
	case total < -progressGradual:
		summary.Trajectory = types.TrendWorsening
	default:
		summary.Trajectory = types.TrendStable
	}

	return summary
}
