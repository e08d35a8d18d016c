package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/labchain/anamnesis/pkg/domain/interfaces"
	"github.com/labchain/anamnesis/pkg/domain/model"
	"github.com/labchain/anamnesis/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Repository is an in-memory Record Store. One generation of records is
// installed by Ingest and never mutated afterwards; reads hand out deep
// copies so callers cannot reach the canonical slices.
type Repository struct {
	mu      sync.RWMutex
	records map[types.RecordID]*model.HistoricalRecord
	order   []types.RecordID // insertion order, ascending ID after Ingest
}

var _ interfaces.RecordRepository = &Repository{}

// New creates an empty Record Store
func New() *Repository {
	return &Repository{
		records: make(map[types.RecordID]*model.HistoricalRecord),
	}
}

// Ingest replaces the whole record generation atomically. The incoming
// batch is normalized and copied; the previous generation is discarded
// only after the new one is fully built.
func (r *Repository) Ingest(ctx context.Context, records []*model.HistoricalRecord) error {
	next := make(map[types.RecordID]*model.HistoricalRecord, len(records))
	order := make([]types.RecordID, 0, len(records))

	for _, record := range records {
		if record == nil {
			return goerr.New("nil record in ingest batch")
		}
		if _, exists := next[record.ID]; exists {
			return goerr.New("duplicate record ID in ingest batch",
				goerr.V("recordID", record.ID),
			)
		}
		normalized := record.Normalize()
		next[record.ID] = normalized.Clone()
		order = append(order, record.ID)
	}

	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = next
	r.order = order
	return nil
}

// Get retrieves a record by ID
func (r *Repository) Get(ctx context.Context, id types.RecordID) (*model.HistoricalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.records[id]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrRecordNotFound, "no such record",
			goerr.V("recordID", id),
		)
	}
	return record.Clone(), nil
}

// List retrieves all records ordered by ID
func (r *Repository) List(ctx context.Context) ([]*model.HistoricalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.HistoricalRecord, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.records[id].Clone())
	}
	return result, nil
}

// ListByClient retrieves a client's records ordered by session number
func (r *Repository) ListByClient(ctx context.Context, clientID types.ClientID) ([]*model.HistoricalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*model.HistoricalRecord
	for _, id := range r.order {
		if r.records[id].ClientID == clientID {
			result = append(result, r.records[id].Clone())
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].SessionNumber < result[j].SessionNumber
	})
	return result, nil
}

// ListByDateRange retrieves records within the inclusive date range,
// ordered by ID
func (r *Repository) ListByDateRange(ctx context.Context, dateRange model.DateRange) ([]*model.HistoricalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*model.HistoricalRecord
	for _, id := range r.order {
		record := r.records[id]
		if record.Date >= dateRange.From && record.Date <= dateRange.To {
			result = append(result, record.Clone())
		}
	}
	return result, nil
}

// Count returns the number of stored records
func (r *Repository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
