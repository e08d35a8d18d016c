package index

import (
	"context"
	"math"
	"sort"

	"github.com/labchain/anamnesis/pkg/domain/model"
	"github.com/labchain/anamnesis/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"golang.org/x/sync/errgroup"
)

// DefaultEmbeddingDimension is the vector size requested from the
// embedding service when no explicit value is configured.
const DefaultEmbeddingDimension = 768

// Hit is one nearest-neighbor result. Distance is cosine distance
// normalized to [0,1], so callers may convert it to a similarity score
// as 1 - Distance without renormalizing.
type Hit struct {
	RecordID types.RecordID
	Distance float64
}

type entry struct {
	recordID types.RecordID
	vector   []float64
}

// Index is a read-only nearest-neighbor store for one dimension. Build
// returns a fresh value; callers swap references instead of mutating,
// so concurrent searches against a built index need no locking.
type Index struct {
	dimension    types.Dimension
	embeddingDim int
	llm          gollem.LLMClient
	entries      []entry
}

// Build projects every record for the given dimension, embeds the
// projections in one batched call, and returns a fully populated index.
// Any embedding failure discards the whole build; no partial index is
// ever observable.
func Build(ctx context.Context, llm gollem.LLMClient, records []*model.HistoricalRecord, dimension types.Dimension, embeddingDim int) (*Index, error) {
	if embeddingDim <= 0 {
		embeddingDim = DefaultEmbeddingDimension
	}

	texts := make([]string, len(records))
	for i, record := range records {
		texts[i] = Project(record, dimension)
	}

	idx := &Index{
		dimension:    dimension,
		embeddingDim: embeddingDim,
		llm:          llm,
	}
	if len(records) == 0 {
		return idx, nil
	}

	vectors, err := llm.GenerateEmbedding(ctx, embeddingDim, texts)
	if err != nil {
		return nil, goerr.Wrap(ErrEmbeddingService, err.Error(),
			goerr.V(DimensionKey, dimension),
		)
	}
	if len(vectors) != len(records) {
		return nil, goerr.Wrap(ErrEmbeddingService, "embedding count mismatch",
			goerr.V(DimensionKey, dimension),
			goerr.V("requested", len(records)),
			goerr.V("returned", len(vectors)),
		)
	}

	idx.entries = make([]entry, len(records))
	for i, record := range records {
		if len(vectors[i]) == 0 {
			return nil, goerr.Wrap(ErrEmbeddingService, "empty embedding vector",
				goerr.V(DimensionKey, dimension),
				goerr.V(RecordIDKey, record.ID),
			)
		}
		idx.entries[i] = entry{recordID: record.ID, vector: vectors[i]}
	}

	return idx, nil
}

// Dimension returns the analytical dimension this index was built for
func (x *Index) Dimension() types.Dimension {
	return x.dimension
}

// Size returns the number of stored vectors
func (x *Index) Size() int {
	if x == nil {
		return 0
	}
	return len(x.entries)
}

// Search embeds the query text and returns the k nearest stored vectors
// by normalized cosine distance, closest first. If the index holds fewer
// than k vectors it returns all of them. Ties keep insertion order.
func (x *Index) Search(ctx context.Context, queryText string, k int) ([]Hit, error) {
	if x == nil || len(x.entries) == 0 {
		return nil, goerr.Wrap(ErrNotInitialized, "search before build")
	}
	if k < 1 {
		return nil, goerr.New("k must be >= 1", goerr.V("k", k))
	}

	vectors, err := x.llm.GenerateEmbedding(ctx, x.embeddingDim, []string{queryText})
	if err != nil {
		return nil, goerr.Wrap(ErrEmbeddingService, err.Error(),
			goerr.V(DimensionKey, x.dimension),
		)
	}
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return nil, goerr.Wrap(ErrEmbeddingService, "query embedding is empty",
			goerr.V(DimensionKey, x.dimension),
		)
	}
	query := vectors[0]

	hits := make([]Hit, len(x.entries))
	for i, e := range x.entries {
		hits[i] = Hit{
			RecordID: e.recordID,
			Distance: cosineDistance(query, e.vector),
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})

	if k > len(hits) {
		k = len(hits)
	}
	return hits[:k], nil
}

// cosineDistance maps cosine similarity ([-1,1]) onto [0,1] so that 0
// means identical direction and 1 means opposite. Degenerate vectors
// (zero norm, length mismatch) land at the far end.
func cosineDistance(a, b []float64) float64 {
	if len(a) != len(b) {
		return 1
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 1
	}

	return (1 - dot/denom) / 2
}

// Set holds the main index plus one index per analytical dimension.
// Which indices exist is a compile-time fact; there is no keyed lookup
// to misspell.
type Set struct {
	Comprehensive *Index
	Emotional     *Index
	Intervention  *Index
	Outcome       *Index
}

// BuildSet builds all four indices from the same record batch. The
// builds run concurrently; any failure aborts the whole set.
func BuildSet(ctx context.Context, llm gollem.LLMClient, records []*model.HistoricalRecord, embeddingDim int) (*Set, error) {
	set := &Set{}

	eg, ctx := errgroup.WithContext(ctx)
	build := func(dimension types.Dimension, dst **Index) {
		eg.Go(func() error {
			built, err := Build(ctx, llm, records, dimension, embeddingDim)
			if err != nil {
				return err
			}
			*dst = built
			return nil
		})
	}

	build(types.DimensionComprehensive, &set.Comprehensive)
	build(types.DimensionEmotional, &set.Emotional)
	build(types.DimensionIntervention, &set.Intervention)
	build(types.DimensionOutcome, &set.Outcome)

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return set, nil
}

// ByDimension returns the index for the given dimension, or nil for an
// unknown dimension.
func (s *Set) ByDimension(dimension types.Dimension) *Index {
	if s == nil {
		return nil
	}
	switch dimension {
	case types.DimensionComprehensive:
		return s.Comprehensive
	case types.DimensionEmotional:
		return s.Emotional
	case types.DimensionIntervention:
		return s.Intervention
	case types.DimensionOutcome:
		return s.Outcome
	default:
		return nil
	}
}
