package usecase

import (
	"context"
	"errors"
	"sort"

	"github.com/labchain/anamnesis/pkg/domain/interfaces"
	"github.com/labchain/anamnesis/pkg/domain/model"
	"github.com/labchain/anamnesis/pkg/domain/types"
	"github.com/labchain/anamnesis/pkg/service/index"
	"github.com/labchain/anamnesis/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// FindSimilarCases retrieves up to limit historical cases most similar
// to the current one, post-filtered and annotated with matching factors
// and rule-based insights. Fewer than limit survivors is not an error;
// an unbuilt index is.
func (uc *UseCases) FindSimilarCases(ctx context.Context, currentCase *model.CurrentCase, limit int, filters *model.SearchFilters) ([]*model.SimilarCase, error) {
	if limit <= 0 {
		limit = DefaultSimilarLimit
	}
	if uc.indexes == nil || uc.indexes.Comprehensive == nil {
		return nil, goerr.Wrap(index.ErrNotInitialized, "historical records not initialized")
	}

	queryText := index.ProjectQuery(currentCase)

	// Over-fetch to compensate for filter rejection
	hits, err := uc.indexes.Comprehensive.Search(ctx, queryText, limit*uc.overfetchFactor)
	if err != nil {
		return nil, goerr.Wrap(err, "similarity search failed", goerr.V(LimitKey, limit))
	}

	candidates := make([]*model.SimilarCase, 0, len(hits))
	for _, hit := range hits {
		record, err := uc.repo.Get(ctx, hit.RecordID)
		if err != nil {
			if errors.Is(err, interfaces.ErrRecordNotFound) {
				// Index and store generations should never diverge, but a
				// dangling hit must not fail the whole query.
				logging.From(ctx).Warn("index hit without backing record",
					"recordID", hit.RecordID)
				continue
			}
			return nil, goerr.Wrap(err, "failed to resolve candidate record")
		}
		if !filters.Matches(record) {
			continue
		}
		candidates = append(candidates, &model.SimilarCase{
			Record:     record,
			Similarity: 1 - hit.Distance,
		})
	}

	// Similarity descending; ties by effectiveness then recency
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Similarity != candidates[j].Similarity {
			return candidates[i].Similarity > candidates[j].Similarity
		}
		if candidates[i].Record.Effectiveness != candidates[j].Record.Effectiveness {
			return candidates[i].Record.Effectiveness > candidates[j].Record.Effectiveness
		}
		return candidates[i].Record.Date > candidates[j].Record.Date
	})

	if limit < len(candidates) {
		candidates = candidates[:limit]
	}

	for _, candidate := range candidates {
		candidate.MatchingFactors = MatchingFactors(currentCase, candidate.Record)
		candidate.RelevantInsights = RelevantInsights(candidate.Record)
	}

	return candidates, nil
}

// SearchByDimension runs a free-text query against one analytical
// dimension's index and resolves the hits back to records, closest
// first.
func (uc *UseCases) SearchByDimension(ctx context.Context, dimension types.Dimension, queryText string, limit int) ([]*model.HistoricalRecord, error) {
	if !dimension.IsValid() {
		return nil, goerr.New("invalid dimension", goerr.V("dimension", dimension))
	}
	if limit <= 0 {
		limit = 10
	}

	idx := uc.indexes.ByDimension(dimension)
	if idx == nil {
		return nil, goerr.Wrap(index.ErrNotInitialized, "dimension not indexed",
			goerr.V("dimension", dimension),
		)
	}

	hits, err := idx.Search(ctx, queryText, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "dimension search failed",
			goerr.V("dimension", dimension),
		)
	}

	records := make([]*model.HistoricalRecord, 0, len(hits))
	for _, hit := range hits {
		record, err := uc.repo.Get(ctx, hit.RecordID)
		if err != nil {
			if errors.Is(err, interfaces.ErrRecordNotFound) {
				continue
			}
			return nil, goerr.Wrap(err, "failed to resolve record")
		}
		records = append(records, record)
	}
	return records, nil
}
