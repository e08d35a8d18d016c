package interfaces

import (
	"context"

	"github.com/labchain/anamnesis/pkg/domain/model"
	"github.com/labchain/anamnesis/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Sentinel errors for the repository layer
var (
	ErrRecordNotFound = goerr.New("record not found")
)

// RecordRepository defines the interface for the canonical Record Store.
// The store is populated once per initialization via Ingest and is
// read-only afterwards; all queries return deep copies.
type RecordRepository interface {
	// Ingest replaces the whole record generation atomically. Records
	// are normalized (scale clamping, risk level defaulting) on the way
	// in. No incremental append exists.
	Ingest(ctx context.Context, records []*model.HistoricalRecord) error

	// Get retrieves a record by ID
	Get(ctx context.Context, id types.RecordID) (*model.HistoricalRecord, error)

	// List retrieves all records ordered by ID
	List(ctx context.Context) ([]*model.HistoricalRecord, error)

	// ListByClient retrieves a client's records ordered by session number
	ListByClient(ctx context.Context, clientID types.ClientID) ([]*model.HistoricalRecord, error)

	// ListByDateRange retrieves records whose date falls in the
	// inclusive range, ordered by ID
	ListByDateRange(ctx context.Context, dateRange model.DateRange) ([]*model.HistoricalRecord, error)

	// Count returns the number of stored records
	Count(ctx context.Context) int
}
