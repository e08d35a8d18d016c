package model_test

import (
	"testing"

	"github.com/labchain/anamnesis/pkg/domain/model"
	"github.com/labchain/anamnesis/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestHistoricalRecord_Normalize(t *testing.T) {
	record := model.HistoricalRecord{
		ID:            1,
		ClientID:      10,
		SessionNumber: 2,
		EmotionalState: model.EmotionalState{
			Depression: 14,
			Anxiety:    -1,
			Loneliness: 7,
			Anger:      10,
			Mood:       "우울함",
		},
		Effectiveness: 0,
	}

	normalized := record.Normalize()

	gt.Value(t, normalized.EmotionalState.Depression).Equal(10)
	gt.Value(t, normalized.EmotionalState.Anxiety).Equal(0)
	gt.Value(t, normalized.EmotionalState.Loneliness).Equal(7)
	gt.Value(t, normalized.EmotionalState.Anger).Equal(10)
	gt.Value(t, normalized.Effectiveness).Equal(1)
	gt.Value(t, normalized.RiskLevel).Equal(types.RiskLevelLow)

	// Value receiver: the original stays untouched
	gt.Value(t, record.EmotionalState.Depression).Equal(14)
}

func TestHistoricalRecord_Clone(t *testing.T) {
	record := &model.HistoricalRecord{
		ID:            7,
		Interventions: []string{"인지행동치료", "호흡 훈련"},
		Challenges:    []string{"수면 문제"},
	}

	copied := record.Clone()
	copied.Interventions[0] = "changed"
	copied.Challenges = append(copied.Challenges, "extra")

	gt.Value(t, record.Interventions[0]).Equal("인지행동치료")
	gt.Array(t, record.Challenges).Length(1)
}
