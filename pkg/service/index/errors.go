package index

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for the embedding index
var (
	// ErrNotInitialized is returned when a search is issued before a
	// successful build.
	ErrNotInitialized = goerr.New("index not initialized")

	// ErrEmbeddingService is returned when the vectorization call fails
	// or returns malformed output. The in-progress build is discarded;
	// a previously built index stays usable.
	ErrEmbeddingService = goerr.New("embedding service failure")
)

// Context keys for error values
const (
	DimensionKey = "dimension"
	RecordIDKey  = "record_id"
)
