package usecase

import (
	"context"

	"github.com/labchain/anamnesis/pkg/domain/interfaces"
	"github.com/labchain/anamnesis/pkg/domain/model"
	"github.com/labchain/anamnesis/pkg/service/index"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
)

const (
	// DefaultOverfetchFactor compensates for post-filter rejection: the
	// index is asked for factor*limit candidates before filtering.
	DefaultOverfetchFactor = 2

	// DefaultSimilarLimit is the similar-case count used when a caller
	// passes no explicit limit.
	DefaultSimilarLimit = 5
)

// UseCases bundles the retrieval and analysis operations over one
// record generation and its index set.
type UseCases struct {
	repo            interfaces.RecordRepository
	indexes         *index.Set
	llmClient       gollem.LLMClient
	overfetchFactor int
	embeddingDim    int
}

type Option func(*UseCases)

// WithOverfetchFactor overrides the candidate over-fetch multiplier
func WithOverfetchFactor(factor int) Option {
	return func(uc *UseCases) {
		if factor > 1 {
			uc.overfetchFactor = factor
		}
	}
}

// WithEmbeddingDimension overrides the embedding vector size
func WithEmbeddingDimension(dim int) Option {
	return func(uc *UseCases) {
		if dim > 0 {
			uc.embeddingDim = dim
		}
	}
}

// New creates the use case bundle. Indices are not built yet; callers
// run Initialize (or swap in a prebuilt set) before issuing queries.
func New(repo interfaces.RecordRepository, llmClient gollem.LLMClient, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:            repo,
		llmClient:       llmClient,
		overfetchFactor: DefaultOverfetchFactor,
		embeddingDim:    index.DefaultEmbeddingDimension,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Initialize ingests the record batch and rebuilds every index from it.
// The new index set replaces the old one only after all builds succeed,
// so concurrent searches keep seeing the previous generation on failure.
func (uc *UseCases) Initialize(ctx context.Context, records []*model.HistoricalRecord) error {
	if err := uc.repo.Ingest(ctx, records); err != nil {
		return goerr.Wrap(err, "failed to ingest record batch")
	}

	stored, err := uc.repo.List(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to list ingested records")
	}

	set, err := index.BuildSet(ctx, uc.llmClient, stored, uc.embeddingDim)
	if err != nil {
		return goerr.Wrap(err, "failed to build index set")
	}

	uc.indexes = set
	return nil
}

// Indexes exposes the current index set (nil before Initialize)
func (uc *UseCases) Indexes() *index.Set {
	return uc.indexes
}
