package config

import (
	"encoding/json"
	"os"

	"github.com/labchain/anamnesis/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Records holds configuration for the historical record batch source.
// The batch is a JSON array exported from the upstream case management
// system; ingestion always replaces the whole store.
type Records struct {
	path string
}

// Flags returns CLI flags for record batch configuration
func (r *Records) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "records",
			Usage:       "Path to JSON file with the historical record batch",
			Required:    true,
			Sources:     cli.EnvVars("ANAMNESIS_RECORDS"),
			Destination: &r.path,
		},
	}
}

// Path returns the configured record batch path
func (r *Records) Path() string {
	return r.path
}

// Load reads and validates the record batch
func (r *Records) Load() ([]*model.HistoricalRecord, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read record batch", goerr.V(RecordPathKey, r.path))
	}

	var records []*model.HistoricalRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, goerr.Wrap(ErrInvalidRecordBatch, err.Error(), goerr.V(RecordPathKey, r.path))
	}

	for i, record := range records {
		if record == nil {
			return nil, goerr.Wrap(ErrInvalidRecordBatch, "null record in batch",
				goerr.V(RecordPathKey, r.path),
				goerr.V(RecordIndexKey, i),
			)
		}
		if record.ID <= 0 {
			return nil, goerr.Wrap(ErrInvalidRecordBatch, "record ID must be positive",
				goerr.V(RecordPathKey, r.path),
				goerr.V(RecordIndexKey, i),
			)
		}
		if record.Date == "" {
			return nil, goerr.Wrap(ErrInvalidRecordBatch, "record date is required",
				goerr.V(RecordPathKey, r.path),
				goerr.V(RecordIndexKey, i),
			)
		}
	}

	return records, nil
}
