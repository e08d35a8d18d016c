package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/labchain/anamnesis/pkg/domain/interfaces"
	"github.com/labchain/anamnesis/pkg/domain/model"
	"github.com/labchain/anamnesis/pkg/domain/types"
	"github.com/labchain/anamnesis/pkg/repository/memory"
	"github.com/m-mizutani/gt"
)

func sampleRecords() []*model.HistoricalRecord {
	return []*model.HistoricalRecord{
		{
			ID:            3,
			ClientID:      100,
			SessionNumber: 3,
			Date:          "2024-03-10",
			EmotionalState: model.EmotionalState{
				Depression: 2, Anxiety: 3, Loneliness: 4, Anger: 1, Mood: "안정됨",
			},
			RiskLevel:     types.RiskLevelLow,
			Effectiveness: 8,
		},
		{
			ID:            1,
			ClientID:      100,
			SessionNumber: 1,
			Date:          "2024-01-15",
			EmotionalState: model.EmotionalState{
				Depression: 8, Anxiety: 7, Loneliness: 6, Anger: 3, Mood: "우울함",
			},
			RiskLevel:     types.RiskLevelHigh,
			Effectiveness: 5,
		},
		{
			ID:            2,
			ClientID:      200,
			SessionNumber: 1,
			Date:          "2024-02-01",
			EmotionalState: model.EmotionalState{
				Depression: 5, Anxiety: 9, Loneliness: 2, Anger: 6, Mood: "불안함",
			},
			RiskLevel:     types.RiskLevelMedium,
			Effectiveness: 6,
		},
	}
}

func TestRepository_IngestAndGet(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	gt.NoError(t, repo.Ingest(ctx, sampleRecords())).Required()
	gt.Value(t, repo.Count(ctx)).Equal(3)

	record, err := repo.Get(ctx, 1)
	gt.NoError(t, err).Required()
	gt.Value(t, record.ClientID).Equal(types.ClientID(100))
	gt.Value(t, record.RiskLevel).Equal(types.RiskLevelHigh)
}

func TestRepository_GetNotFound(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	gt.NoError(t, repo.Ingest(ctx, sampleRecords())).Required()

	_, err := repo.Get(ctx, 999)
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, interfaces.ErrRecordNotFound)).True()
}

func TestRepository_ListOrderedByID(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	gt.NoError(t, repo.Ingest(ctx, sampleRecords())).Required()

	records, err := repo.List(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, records).Length(3)
	gt.Value(t, records[0].ID).Equal(types.RecordID(1))
	gt.Value(t, records[1].ID).Equal(types.RecordID(2))
	gt.Value(t, records[2].ID).Equal(types.RecordID(3))
}

func TestRepository_ListByClientSessionOrder(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	gt.NoError(t, repo.Ingest(ctx, sampleRecords())).Required()

	records, err := repo.ListByClient(ctx, 100)
	gt.NoError(t, err).Required()
	gt.Array(t, records).Length(2)
	gt.Value(t, records[0].SessionNumber).Equal(1)
	gt.Value(t, records[1].SessionNumber).Equal(3)
}

func TestRepository_ListByDateRange(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	gt.NoError(t, repo.Ingest(ctx, sampleRecords())).Required()

	records, err := repo.ListByDateRange(ctx, model.DateRange{From: "2024-01-01", To: "2024-02-28"})
	gt.NoError(t, err).Required()
	gt.Array(t, records).Length(2)
}

func TestRepository_IngestNormalizes(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	err := repo.Ingest(ctx, []*model.HistoricalRecord{
		{
			ID: 1,
			EmotionalState: model.EmotionalState{
				Depression: 15, Anxiety: -2,
			},
			Effectiveness: 12,
		},
	})
	gt.NoError(t, err).Required()

	record, err := repo.Get(ctx, 1)
	gt.NoError(t, err).Required()
	gt.Value(t, record.EmotionalState.Depression).Equal(10)
	gt.Value(t, record.EmotionalState.Anxiety).Equal(0)
	gt.Value(t, record.Effectiveness).Equal(10)
	gt.Value(t, record.RiskLevel).Equal(types.RiskLevelLow)
}

func TestRepository_IngestRejectsDuplicateIDs(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	err := repo.Ingest(ctx, []*model.HistoricalRecord{{ID: 1}, {ID: 1}})
	gt.Error(t, err)
	// Failed ingest must not leave a partial generation behind
	gt.Value(t, repo.Count(ctx)).Equal(0)
}

func TestRepository_ReadsReturnCopies(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	gt.NoError(t, repo.Ingest(ctx, []*model.HistoricalRecord{
		{ID: 1, Interventions: []string{"회상 요법"}},
	})).Required()

	first, err := repo.Get(ctx, 1)
	gt.NoError(t, err).Required()
	first.Interventions[0] = "mutated"

	second, err := repo.Get(ctx, 1)
	gt.NoError(t, err).Required()
	gt.Value(t, second.Interventions[0]).Equal("회상 요법")
}
